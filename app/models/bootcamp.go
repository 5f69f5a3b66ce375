package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Bootcamp struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Name          string    `gorm:"uniqueIndex;size:191;not null" json:"name"`
	Slug          string    `gorm:"size:191;index" json:"slug"`
	Description   string    `gorm:"size:2048" json:"description"`
	Website       string    `gorm:"size:255" json:"website,omitempty"`
	Phone         string    `gorm:"size:32" json:"phone,omitempty"`
	Email         string    `gorm:"size:191" json:"email,omitempty"`
	Address       string    `gorm:"size:255" json:"address,omitempty"`
	Latitude      float64   `json:"latitude,omitempty"`
	Longitude     float64   `json:"longitude,omitempty"`
	Careers       string    `gorm:"size:512" json:"careers"`
	AverageCost   float64   `json:"averageCost"`
	AverageRating float64   `json:"averageRating,omitempty"`
	Photo         string    `gorm:"size:255" json:"photo,omitempty"`
	Housing       bool      `json:"housing"`
	JobAssistance bool      `json:"jobAssistance"`
	JobGuarantee  bool      `json:"jobGuarantee"`
	AcceptGi      bool      `json:"acceptGi"`
	UserID        string    `gorm:"size:36;index;not null" json:"user"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"-"`

	Courses []Course `gorm:"foreignKey:BootcampID" json:"courses,omitempty"`
	Reviews []Review `gorm:"foreignKey:BootcampID" json:"reviews,omitempty"`
}

func (b *Bootcamp) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Slug == "" {
		b.Slug = Slugify(b.Name)
	}
	return nil
}

// Slugify lowercases the name and collapses everything that is not a
// letter or digit into single dashes.
func Slugify(name string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			dash = false
		default:
			if !dash && sb.Len() > 0 {
				sb.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
