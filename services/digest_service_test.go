package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wellbeing-backend/models"
	"wellbeing-backend/repository"
)

type fakeDigestStore struct {
	bookings    []models.Booking
	contacts    []models.ContactSubmission
	subscribers int64
	since       time.Time
	err         error
}

// ListBookings applies the same status and date rules as the record store.
func (s *fakeDigestStore) ListBookings(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Booking
	for _, b := range s.bookings {
		if len(filter.Statuses) > 0 {
			match := false
			for _, st := range filter.Statuses {
				match = match || b.Status == st
			}
			if !match {
				continue
			}
		}
		if filter.DateFrom != nil && b.PreferredDate.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && b.PreferredDate.After(*filter.DateTo) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *fakeDigestStore) ListContacts(ctx context.Context, unreadOnly bool) ([]models.ContactSubmission, error) {
	return s.contacts, nil
}

func (s *fakeDigestStore) CountSubscribersSince(ctx context.Context, since time.Time) (int64, error) {
	s.since = since
	return s.subscribers, nil
}

type fakeDigestSender struct {
	sent []Digest
	err  error
}

func (f *fakeDigestSender) SendDigest(ctx context.Context, digest Digest) error {
	f.sent = append(f.sent, digest)
	return f.err
}

func digestBooking(name string, day time.Time, status models.BookingStatus) models.Booking {
	b := *testBooking()
	b.ID = uuid.New()
	b.FullName = name
	b.PreferredDate = day
	b.Status = status
	return b
}

func TestDigestService_Build(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	store := &fakeDigestStore{
		bookings: []models.Booking{
			digestBooking("Pending Far", day(30), models.StatusPending),
			digestBooking("Confirmed Soon", day(11), models.StatusConfirmed),
			digestBooking("Pending Today", day(10), models.StatusPending),
			digestBooking("Cancelled Soon", day(12), models.StatusCancelled),
		},
		contacts:    []models.ContactSubmission{{Name: "Brian", Email: "b@example.com", Subject: "Hi"}},
		subscribers: 2,
	}
	svc := NewDigestService(store, &fakeDigestSender{}, zerolog.Nop())
	svc.now = func() time.Time { return now }

	digest, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(digest.Pending) != 2 {
		t.Errorf("pending = %d, want 2", len(digest.Pending))
	}
	when := map[string]string{}
	for _, u := range digest.Upcoming {
		when[u.Booking.FullName] = u.When
	}
	if len(when) != 2 || when["Confirmed Soon"] != "Tomorrow" || when["Pending Today"] != "Today" {
		t.Errorf("upcoming = %v", when)
	}
	if digest.NewSubscribers != 2 || !store.since.Equal(now.Add(-24*time.Hour)) {
		t.Errorf("new subscribers = %d since %v", digest.NewSubscribers, store.since)
	}
	if digest.Empty() {
		t.Error("digest should not be empty")
	}
}

func TestDigestService_SkipsEmptyDigest(t *testing.T) {
	sender := &fakeDigestSender{}
	svc := NewDigestService(&fakeDigestStore{}, sender, zerolog.Nop())

	sent, err := svc.SendDailyDigest(context.Background())
	if err != nil || sent {
		t.Errorf("SendDailyDigest() = %v, %v, want false, nil", sent, err)
	}
	if len(sender.sent) != 0 {
		t.Error("empty digest should not be sent")
	}
}

func TestDigestService_Errors(t *testing.T) {
	storeErr := errors.New("db gone")
	svc := NewDigestService(&fakeDigestStore{err: storeErr}, &fakeDigestSender{}, zerolog.Nop())
	if _, err := svc.SendDailyDigest(context.Background()); !errors.Is(err, storeErr) {
		t.Errorf("error = %v, want db gone", err)
	}

	sendErr := errors.New("relay down")
	svc = NewDigestService(&fakeDigestStore{subscribers: 1}, &fakeDigestSender{err: sendErr}, zerolog.Nop())
	if sent, err := svc.SendDailyDigest(context.Background()); sent || !errors.Is(err, sendErr) {
		t.Errorf("SendDailyDigest() = %v, %v", sent, err)
	}
}

func TestDigestService_StartRejectsBadSchedule(t *testing.T) {
	svc := NewDigestService(&fakeDigestStore{}, &fakeDigestSender{}, zerolog.Nop())
	if _, err := svc.Start("every morning"); err == nil {
		t.Error("expected an error for an invalid cron spec")
	}
	c, err := svc.Start("0 8 * * *")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	c.Stop()
}

func TestSendDigest_Email(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewNotifier(testConfig(), mailer, nil, nil, zerolog.Nop())

	digest := Digest{
		GeneratedAt:    time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		Pending:        []models.Booking{*testBooking()},
		NewSubscribers: 3,
	}
	if err := n.SendDigest(context.Background(), digest); err != nil {
		t.Fatal(err)
	}
	msg := mailer.sent[0]
	if msg.Subject != "Test Well-being daily summary: 1 pending bookings" {
		t.Errorf("subject = %q", msg.Subject)
	}
	for _, want := range []string{"Tuesday, 10 June 2025", "PENDING BOOKINGS (1)", "Amina Otieno", "(last 24h): 3", "UNREAD MESSAGES (0):\n- none"} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("body missing %q:\n%s", want, msg.Body)
		}
	}
}
