// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationSent   = "sent"
	NotificationFailed = "failed"
)

// NotificationLog records every outbound notification attempt.
type NotificationLog struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	BookingID    *uuid.UUID `gorm:"type:uuid;index" json:"bookingId,omitempty"`
	Kind         string     `gorm:"type:varchar(30);index" json:"kind"` // booking_admin, booking_client, booking_sms, footer_inquiry, digest
	Channel      string     `gorm:"type:varchar(20)" json:"channel"`    // email, sms
	Recipient    string     `gorm:"size:254" json:"recipient"`
	Subject      string     `gorm:"size:300" json:"subject"`
	Status       string     `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string     `gorm:"type:text" json:"errorMessage,omitempty"`
	SentAt       time.Time  `json:"sentAt"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	ensureID(&n.ID)
	return
}
