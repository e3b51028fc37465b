// models/newsletter.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterSubscriber struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	SubscribedAt time.Time `gorm:"autoCreateTime;index" json:"subscribedAt"`
	IsActive     bool      `gorm:"not null" json:"isActive"`
}

func (n *NewsletterSubscriber) BeforeCreate(tx *gorm.DB) (err error) {
	ensureID(&n.ID)
	return
}
