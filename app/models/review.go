package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Text       string    `gorm:"size:2048" json:"text"`
	Rating     int       `json:"rating"`
	BootcampID string    `gorm:"size:36;not null;uniqueIndex:idx_review_bootcamp_user" json:"bootcamp"`
	UserID     string    `gorm:"size:36;not null;uniqueIndex:idx_review_bootcamp_user" json:"user"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"-"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
