package repository

import (
	"context"
	"fmt"

	"wellbeing-backend/models"
)

func defaultServices() []models.Service {
	return []models.Service{
		{
			Name:        "Consultancy & Advisory",
			Category:    models.CategoryConsultancy,
			Description: "Guidance for organisations and families on mental health and well-being strategy.",
			Features:    "Needs assessment, Well-being policy review, Follow-up advisory sessions",
			IconClass:   "bi-briefcase",
			IsActive:    true,
		},
		{
			Name:        "Counselling & Psychotherapy",
			Category:    models.CategoryCounselling,
			Description: "Confidential one-to-one, couples and family counselling.",
			Features:    "Individual therapy, Couples and family sessions, Online or in-person",
			IconClass:   "bi-heart-pulse",
			IsActive:    true,
		},
		{
			Name:        "Training & Capacity Building",
			Category:    models.CategoryTraining,
			Description: "Workshops that equip teams to support mental well-being at work.",
			Features:    "Psychological first aid, Stress management, Tailored workshops",
			IconClass:   "bi-mortarboard",
			IsActive:    true,
		},
	}
}

// SeedServices inserts the default services when the table is empty.
func (s *Store) SeedServices(ctx context.Context) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Service{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	services := defaultServices()
	if err := s.db.WithContext(ctx).Create(&services).Error; err != nil {
		return 0, fmt.Errorf("seed services: %w", err)
	}
	return len(services), nil
}
