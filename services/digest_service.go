// services/digest_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"wellbeing-backend/models"
	"wellbeing-backend/repository"
	"wellbeing-backend/utils"
)

const upcomingWindowDays = 7

// DigestStore is the part of the record store the digest reads.
type DigestStore interface {
	ListBookings(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error)
	ListContacts(ctx context.Context, unreadOnly bool) ([]models.ContactSubmission, error)
	CountSubscribersSince(ctx context.Context, since time.Time) (int64, error)
}

type DigestSender interface {
	SendDigest(ctx context.Context, digest Digest) error
}

// Digest is the admin's daily summary.
type Digest struct {
	GeneratedAt    time.Time
	Pending        []models.Booking
	Upcoming       []UpcomingAppointment
	UnreadContacts []models.ContactSubmission
	NewSubscribers int64
}

type UpcomingAppointment struct {
	Booking models.Booking
	When    string // "Today", "Tomorrow", "in 3 days"
}

// Empty reports whether there is nothing worth mailing.
func (d Digest) Empty() bool {
	return len(d.Pending) == 0 && len(d.Upcoming) == 0 &&
		len(d.UnreadContacts) == 0 && d.NewSubscribers == 0
}

type DigestService struct {
	store  DigestStore
	sender DigestSender
	logger zerolog.Logger
	now    func() time.Time
}

func NewDigestService(store DigestStore, sender DigestSender, logger zerolog.Logger) *DigestService {
	return &DigestService{
		store:  store,
		sender: sender,
		logger: logger,
		now:    time.Now,
	}
}

// Start schedules the digest on the given cron spec. The caller stops the
// returned scheduler on shutdown.
func (s *DigestService) Start(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if _, err := s.SendDailyDigest(context.Background()); err != nil {
			s.logger.Error().Err(err).Msg("Daily digest failed")
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule digest %q: %w", spec, err)
	}
	c.Start()
	s.logger.Info().Str("schedule", spec).Msg("Digest scheduler started")
	return c, nil
}

// Build gathers the digest without sending it.
func (s *DigestService) Build(ctx context.Context) (Digest, error) {
	now := s.now()
	digest := Digest{GeneratedAt: now}

	pending, err := s.store.ListBookings(ctx, repository.BookingFilter{
		Statuses: []models.BookingStatus{models.StatusPending},
	})
	if err != nil {
		return Digest{}, fmt.Errorf("pending bookings: %w", err)
	}
	digest.Pending = pending

	// preferred dates are stored as UTC midnights
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, upcomingWindowDays)
	upcoming, err := s.store.ListBookings(ctx, repository.BookingFilter{
		Statuses: []models.BookingStatus{models.StatusPending, models.StatusConfirmed},
		DateFrom: &from,
		DateTo:   &to,
	})
	if err != nil {
		return Digest{}, fmt.Errorf("upcoming bookings: %w", err)
	}
	for _, b := range upcoming {
		digest.Upcoming = append(digest.Upcoming, UpcomingAppointment{
			Booking: b,
			When:    utils.RelativeDay(now, b.PreferredDate),
		})
	}

	unread, err := s.store.ListContacts(ctx, true)
	if err != nil {
		return Digest{}, fmt.Errorf("unread contacts: %w", err)
	}
	digest.UnreadContacts = unread

	digest.NewSubscribers, err = s.store.CountSubscribersSince(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return Digest{}, fmt.Errorf("new subscribers: %w", err)
	}

	return digest, nil
}

// SendDailyDigest builds and mails the digest, skipping empty days.
func (s *DigestService) SendDailyDigest(ctx context.Context) (bool, error) {
	s.logger.Info().Msg("Starting daily digest...")

	digest, err := s.Build(ctx)
	if err != nil {
		return false, err
	}
	if digest.Empty() {
		s.logger.Info().Msg("Nothing to report, digest skipped")
		return false, nil
	}
	if err := s.sender.SendDigest(ctx, digest); err != nil {
		return false, fmt.Errorf("send digest: %w", err)
	}

	s.logger.Info().
		Int("pending", len(digest.Pending)).
		Int("upcoming", len(digest.Upcoming)).
		Int("unread", len(digest.UnreadContacts)).
		Int64("new_subscribers", digest.NewSubscribers).
		Msg("Daily digest sent")
	return true, nil
}
