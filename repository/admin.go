package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wellbeing-backend/models"
)

// BookingFilter narrows ListBookings. Zero values mean no restriction.
// Date bounds are inclusive and compared against the preferred date.
type BookingFilter struct {
	Statuses []models.BookingStatus
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
}

func (s *Store) ListBookings(ctx context.Context, filter BookingFilter) ([]models.Booking, error) {
	query := s.db.WithContext(ctx)
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.DateFrom != nil {
		query = query.Where("preferred_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("preferred_date <= ?", *filter.DateTo)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	var bookings []models.Booking
	err := query.Order("preferred_date").Order("preferred_time").Find(&bookings).Error
	return bookings, err
}

func (s *Store) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &booking, nil
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	result := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetBooking(ctx, id)
}

func (s *Store) ListContacts(ctx context.Context, unreadOnly bool) ([]models.ContactSubmission, error) {
	query := s.db.WithContext(ctx)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	var submissions []models.ContactSubmission
	err := query.Order("submitted_at DESC").Find(&submissions).Error
	return submissions, err
}

func (s *Store) MarkContactRead(ctx context.Context, id uuid.UUID, read bool) (*models.ContactSubmission, error) {
	result := s.db.WithContext(ctx).Model(&models.ContactSubmission{}).
		Where("id = ?", id).
		Update("is_read", read)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var submission models.ContactSubmission
	if err := s.db.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &submission, nil
}

func (s *Store) ListSubscribers(ctx context.Context, activeOnly bool) ([]models.NewsletterSubscriber, error) {
	query := s.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var subscribers []models.NewsletterSubscriber
	err := query.Order("subscribed_at DESC").Find(&subscribers).Error
	return subscribers, err
}

func (s *Store) SetSubscriberActive(ctx context.Context, id uuid.UUID, active bool) (*models.NewsletterSubscriber, error) {
	result := s.db.WithContext(ctx).Model(&models.NewsletterSubscriber{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var subscriber models.NewsletterSubscriber
	if err := s.db.WithContext(ctx).First(&subscriber, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &subscriber, nil
}

func (s *Store) CountSubscribersSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.NewsletterSubscriber{}).
		Where("subscribed_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := s.db.WithContext(ctx).Order("category").Order("name").Find(&services).Error
	return services, err
}

func (s *Store) GetService(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (s *Store) CreateService(ctx context.Context, service *models.Service) error {
	return translate(s.db.WithContext(ctx).Create(service).Error)
}

func (s *Store) SaveService(ctx context.Context, service *models.Service) error {
	return translate(s.db.WithContext(ctx).Save(service).Error)
}

func (s *Store) DeleteService(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

func (s *Store) CreateBlog(ctx context.Context, blog *models.Blog) error {
	return translate(s.db.WithContext(ctx).Create(blog).Error)
}

// SetBlogPublished toggles publication; the first publish stamps PublishedAt.
func (s *Store) SetBlogPublished(ctx context.Context, id uuid.UUID, published bool, now time.Time) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.WithContext(ctx).First(&blog, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	blog.IsPublished = published
	if published && blog.PublishedAt == nil {
		blog.PublishedAt = &now
	}
	if err := s.db.WithContext(ctx).Save(&blog).Error; err != nil {
		return nil, translate(err)
	}
	return &blog, nil
}

// Counts backs the admin dashboard.
type Counts struct {
	PendingBookings   int64 `json:"pendingBookings"`
	TotalBookings     int64 `json:"totalBookings"`
	UnreadContacts    int64 `json:"unreadContacts"`
	ActiveSubscribers int64 `json:"activeSubscribers"`
	ActiveServices    int64 `json:"activeServices"`
	PublishedBlogs    int64 `json:"publishedBlogs"`
}

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var counts Counts
	db := s.db.WithContext(ctx)
	steps := []struct {
		model interface{}
		where string
		args  []interface{}
		dst   *int64
	}{
		{&models.Booking{}, "status = ?", []interface{}{models.StatusPending}, &counts.PendingBookings},
		{&models.Booking{}, "", nil, &counts.TotalBookings},
		{&models.ContactSubmission{}, "is_read = ?", []interface{}{false}, &counts.UnreadContacts},
		{&models.NewsletterSubscriber{}, "is_active = ?", []interface{}{true}, &counts.ActiveSubscribers},
		{&models.Service{}, "is_active = ?", []interface{}{true}, &counts.ActiveServices},
		{&models.Blog{}, "is_published = ?", []interface{}{true}, &counts.PublishedBlogs},
	}
	for _, step := range steps {
		query := db.Model(step.model)
		if step.where != "" {
			query = query.Where(step.where, step.args...)
		}
		if err := query.Count(step.dst).Error; err != nil {
			return Counts{}, err
		}
	}
	return counts, nil
}
