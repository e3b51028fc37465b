// Package repository is the record store for the website: services, blog
// posts, bookings, contact submissions, newsletter subscribers and the
// notification log. Every create is its own atomic unit.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"wellbeing-backend/models"
)

var (
	ErrDuplicate = errors.New("record already exists")
	ErrNotFound  = errors.New("record not found")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the schema for every model.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// translate maps driver errors onto the store's sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return err
	}
}

func (s *Store) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return translate(s.db.WithContext(ctx).Create(booking).Error)
}

func (s *Store) CreateContact(ctx context.Context, submission *models.ContactSubmission) error {
	return translate(s.db.WithContext(ctx).Create(submission).Error)
}

// CreateSubscriber relies on the unique index on email; a concurrent insert of
// the same address fails with ErrDuplicate.
func (s *Store) CreateSubscriber(ctx context.Context, subscriber *models.NewsletterSubscriber) error {
	return translate(s.db.WithContext(ctx).Create(subscriber).Error)
}

func (s *Store) SubscriberExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.NewsletterSubscriber{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CreateNotificationLog(ctx context.Context, entry *models.NotificationLog) error {
	return translate(s.db.WithContext(ctx).Create(entry).Error)
}

func (s *Store) NotificationLogs(ctx context.Context, bookingID uuid.UUID) ([]models.NotificationLog, error) {
	var logs []models.NotificationLog
	err := s.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("sent_at").
		Find(&logs).Error
	return logs, err
}

// ActiveServices lists active services, optionally limited to one category.
func (s *Store) ActiveServices(ctx context.Context, category models.ServiceCategory) ([]models.Service, error) {
	query := s.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var services []models.Service
	err := query.Order("category").Order("name").Find(&services).Error
	return services, err
}

// PublishedBlogs returns the most recent published posts; limit <= 0 means all.
func (s *Store) PublishedBlogs(ctx context.Context, limit int) ([]models.Blog, error) {
	query := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("published_at DESC").
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var blogs []models.Blog
	err := query.Find(&blogs).Error
	return blogs, err
}

func (s *Store) PublishedBlogBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	var blog models.Blog
	err := s.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&blog).Error
	if err != nil {
		return nil, translate(err)
	}
	return &blog, nil
}
