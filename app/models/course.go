package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	Title        string  `gorm:"size:255;not null" json:"title"`
	Description  string  `gorm:"size:2048" json:"description"`
	Weeks        int     `json:"weeks"`
	Tuition      float64 `json:"tuition"`
	MinimumSkill string  `gorm:"size:32" json:"minimumSkill"`
	Scholarship  bool    `json:"scholarshipAvailable"`
	BootcampID   string  `gorm:"size:36;index;not null" json:"bootcamp"`
	// UserID records who created the course. Ownership checks run against
	// this field, not against the parent bootcamp's current owner.
	UserID    string    `gorm:"size:36;index;not null" json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
