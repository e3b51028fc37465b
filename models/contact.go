// models/contact.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FooterSubject is stored as the subject of messages sent from the footer form.
const FooterSubject = "Footer Inquiry"

type ContactSubmission struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Email       string    `gorm:"size:254;not null" json:"email"`
	Subject     string    `gorm:"size:300;not null" json:"subject"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time `gorm:"autoCreateTime;index" json:"submittedAt"`
	IsRead      bool      `gorm:"index;not null" json:"isRead"`
}

func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) (err error) {
	ensureID(&c.ID)
	return
}
