// models/booking.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionMode string

const (
	SessionInPerson  SessionMode = "in-person"
	SessionOnline    SessionMode = "online"
	SessionTelephone SessionMode = "telephone"
)

var sessionModeLabels = map[SessionMode]string{
	SessionInPerson:  "In-person",
	SessionOnline:    "Online",
	SessionTelephone: "Telephone",
}

func (m SessionMode) Label() string {
	if label, ok := sessionModeLabels[m]; ok {
		return label
	}
	return string(m)
}

func (m SessionMode) Valid() bool {
	_, ok := sessionModeLabels[m]
	return ok
}

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Service types offered on the booking form. Categories are accepted too.
var serviceTypeLabels = map[string]string{
	"individual":     "Individual & Family Services",
	"organizational": "Organizational & Training Services",
}

// ServiceTypeLabel returns the display name of a booking service type,
// falling back to the raw value for types the site does not know about.
func ServiceTypeLabel(serviceType string) string {
	if label, ok := serviceTypeLabels[serviceType]; ok {
		return label
	}
	if c := ServiceCategory(serviceType); c.Valid() {
		return c.Label()
	}
	return serviceType
}

type Booking struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	FullName      string        `gorm:"size:200;not null" json:"fullName"`
	Email         string        `gorm:"size:254;index;not null" json:"email"`
	Phone         string        `gorm:"size:50;not null" json:"phone"`
	ServiceType   string        `gorm:"type:varchar(30);not null" json:"serviceType"`
	SessionMode   SessionMode   `gorm:"type:varchar(20);not null" json:"sessionMode"`
	PreferredDate time.Time     `gorm:"type:date;index;not null" json:"preferredDate"`
	PreferredTime string        `gorm:"type:varchar(5);not null" json:"preferredTime"` // HH:MM, 24h
	Description   string        `gorm:"type:text" json:"description"`
	SubmittedAt   time.Time     `gorm:"autoCreateTime;not null" json:"submittedAt"`
	Status        BookingStatus `gorm:"type:varchar(20);index;default:'pending'" json:"status"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	ensureID(&b.ID)
	if b.Status == "" {
		b.Status = StatusPending
	}
	return
}

func (b Booking) ServiceLabel() string {
	return ServiceTypeLabel(b.ServiceType)
}
