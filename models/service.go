// models/service.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceCategory string

const (
	CategoryConsultancy ServiceCategory = "consultancy"
	CategoryCounselling ServiceCategory = "counselling"
	CategoryTraining    ServiceCategory = "training"
)

var categoryLabels = map[ServiceCategory]string{
	CategoryConsultancy: "Consultancy & Advisory Services",
	CategoryCounselling: "Counselling & Psychotherapy Services",
	CategoryTraining:    "Training & Capacity Building Services",
}

// Categories lists the categories in display order.
func Categories() []ServiceCategory {
	return []ServiceCategory{CategoryConsultancy, CategoryCounselling, CategoryTraining}
}

func (c ServiceCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c ServiceCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Category    ServiceCategory `gorm:"type:varchar(20);index;not null" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	Price       string          `gorm:"size:100;default:'Contact for pricing'" json:"price"`
	Features    string          `gorm:"type:text" json:"features"` // comma separated
	IconClass   string          `gorm:"size:50;default:'bi-heart-pulse'" json:"iconClass"`
	IsActive    bool            `gorm:"not null" json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	ensureID(&s.ID)
	return
}

// FeaturesList splits the stored features into an ordered list, dropping blanks.
func (s Service) FeaturesList() []string {
	var features []string
	for _, feature := range strings.Split(s.Features, ",") {
		if feature = strings.TrimSpace(feature); feature != "" {
			features = append(features, feature)
		}
	}
	return features
}

// JoinFeatures is the inverse of FeaturesList.
func JoinFeatures(features []string) string {
	cleaned := make([]string, 0, len(features))
	for _, feature := range features {
		if feature = strings.TrimSpace(feature); feature != "" {
			cleaned = append(cleaned, feature)
		}
	}
	return strings.Join(cleaned, ", ")
}

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
