// services/notifier.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wellbeing-backend/config"
	"wellbeing-backend/metrics"
	"wellbeing-backend/models"
	"wellbeing-backend/utils"
)

const (
	KindBookingAdmin  = "booking_admin"
	KindBookingClient = "booking_client"
	KindBookingSMS    = "booking_sms"
	KindFooterInquiry = "footer_inquiry"
	KindDigest        = "digest"

	recordTimeout = 2 * time.Second
)

// NotificationRecorder persists notification attempts.
type NotificationRecorder interface {
	CreateNotificationLog(ctx context.Context, entry *models.NotificationLog) error
}

// Notifier composes and dispatches transactional messages. Every method is
// bounded by the configured email timeout and ignores cancellation of the
// caller's context, so a client hanging up does not abort the sends.
type Notifier struct {
	cfg      *config.Config
	mailer   Mailer
	sms      SMSSender
	recorder NotificationRecorder
	logger   zerolog.Logger
	now      func() time.Time
}

// NewNotifier wires the notifier. sms and recorder may be nil.
func NewNotifier(cfg *config.Config, mailer Mailer, sms SMSSender, recorder NotificationRecorder, logger zerolog.Logger) *Notifier {
	return &Notifier{
		cfg:      cfg,
		mailer:   mailer,
		sms:      sms,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

type bookingEmail struct {
	Booking        *models.Booking
	Service        string
	SessionMode    string
	Date           string
	Time           string
	Submitted      string
	SiteName       string
	SitePhone      string
	SiteEmail      string
	Director       string
	ResponseWindow string
}

func (n *Notifier) bookingEmail(b *models.Booking) bookingEmail {
	displayTime := b.PreferredTime
	if t, err := time.Parse(utils.Clock24, b.PreferredTime); err == nil {
		displayTime = t.Format("3:04 PM")
	}
	submitted := b.SubmittedAt
	if submitted.IsZero() {
		submitted = n.now()
	}
	return bookingEmail{
		Booking:        b,
		Service:        b.ServiceLabel(),
		SessionMode:    b.SessionMode.Label(),
		Date:           b.PreferredDate.Format("Monday, 2 January 2006"),
		Time:           displayTime,
		Submitted:      submitted.Format("2006-01-02 15:04 MST"),
		SiteName:       n.cfg.SiteName,
		SitePhone:      n.cfg.SitePhone,
		SiteEmail:      n.cfg.AdminEmail,
		Director:       n.cfg.DirectorName,
		ResponseWindow: n.cfg.ResponseWindow,
	}
}

// NotifyBooking sends the admin summary and the client confirmation as two
// independent messages, plus an SMS alert when configured. A failed send does
// not prevent the others; all failures are returned joined.
func (n *Notifier) NotifyBooking(ctx context.Context, b *models.Booking) error {
	ctx, cancel := n.bounded(ctx)
	defer cancel()

	data := n.bookingEmail(b)
	var errs []error

	if body, err := renderEmail("booking_admin", data); err != nil {
		errs = append(errs, fmt.Errorf("render admin email: %w", err))
	} else {
		errs = append(errs, n.deliver(ctx, KindBookingAdmin, &b.ID, Message{
			From:    n.cfg.DefaultFromEmail,
			To:      []string{n.cfg.AdminEmail},
			Subject: "New Booking - " + b.FullName,
			Body:    body,
		}))
	}

	if body, err := renderEmail("booking_client", data); err != nil {
		errs = append(errs, fmt.Errorf("render client email: %w", err))
	} else {
		errs = append(errs, n.deliver(ctx, KindBookingClient, &b.ID, Message{
			From:    n.cfg.DefaultFromEmail,
			To:      []string{b.Email},
			Subject: "Booking Confirmation - " + n.cfg.SiteName,
			Body:    body,
		}))
	}

	if n.sms != nil && n.cfg.AdminAlertPhone != "" {
		errs = append(errs, n.alertSMS(ctx, b, data))
	}

	return errors.Join(errs...)
}

func (n *Notifier) alertSMS(ctx context.Context, b *models.Booking, data bookingEmail) error {
	body := fmt.Sprintf("New booking: %s (%s) for %s on %s at %s.",
		b.FullName, b.Phone, data.Service, b.PreferredDate.Format(utils.DateLayout), b.PreferredTime)

	err := n.sms.SendSMS(ctx, n.cfg.AdminAlertPhone, body)
	metrics.RecordNotification(KindBookingSMS, err)
	n.record(ctx, &models.NotificationLog{
		BookingID: &b.ID,
		Kind:      KindBookingSMS,
		Channel:   "sms",
		Recipient: n.cfg.AdminAlertPhone,
		Subject:   "New booking",
	}, err)
	if err != nil {
		return fmt.Errorf("%s to %s: %w", KindBookingSMS, n.cfg.AdminAlertPhone, err)
	}
	return nil
}

// NotifyFooterInquiry tells the admin about a message sent from the footer form.
func (n *Notifier) NotifyFooterInquiry(ctx context.Context, submission *models.ContactSubmission) error {
	ctx, cancel := n.bounded(ctx)
	defer cancel()

	body, err := renderEmail("footer_inquiry", submission)
	if err != nil {
		return fmt.Errorf("render footer inquiry email: %w", err)
	}
	return n.deliver(ctx, KindFooterInquiry, nil, Message{
		From:    n.cfg.DefaultFromEmail,
		To:      []string{n.cfg.AdminEmail},
		Subject: "New Footer Inquiry from " + submission.Name,
		Body:    body,
	})
}

// SendDigest mails the daily summary to the admin.
func (n *Notifier) SendDigest(ctx context.Context, digest Digest) error {
	ctx, cancel := n.bounded(ctx)
	defer cancel()

	body, err := renderEmail("digest", struct {
		Date   string
		Digest Digest
	}{
		Date:   digest.GeneratedAt.Format("Monday, 2 January 2006"),
		Digest: digest,
	})
	if err != nil {
		return fmt.Errorf("render digest email: %w", err)
	}
	return n.deliver(ctx, KindDigest, nil, Message{
		From:    n.cfg.DefaultFromEmail,
		To:      []string{n.cfg.AdminEmail},
		Subject: fmt.Sprintf("%s daily summary: %d pending bookings", n.cfg.SiteName, len(digest.Pending)),
		Body:    body,
	})
}

func (n *Notifier) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), n.cfg.EmailTimeout)
}

func (n *Notifier) deliver(ctx context.Context, kind string, bookingID *uuid.UUID, msg Message) error {
	err := n.mailer.Send(ctx, msg)
	metrics.RecordNotification(kind, err)
	n.record(ctx, &models.NotificationLog{
		BookingID: bookingID,
		Kind:      kind,
		Channel:   "email",
		Recipient: msg.To[0],
		Subject:   msg.Subject,
	}, err)
	if err != nil {
		return fmt.Errorf("%s email to %s: %w", kind, msg.To[0], err)
	}
	return nil
}

// record stores the attempt. It runs on its own deadline because ctx may
// already have expired when the send timed out.
func (n *Notifier) record(ctx context.Context, entry *models.NotificationLog, sendErr error) {
	if n.recorder == nil {
		return
	}
	entry.SentAt = n.now()
	entry.Status = models.NotificationSent
	if sendErr != nil {
		entry.Status = models.NotificationFailed
		entry.ErrorMessage = sendErr.Error()
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()
	if err := n.recorder.CreateNotificationLog(recordCtx, entry); err != nil {
		n.logger.Warn().Err(err).Str("kind", entry.Kind).Msg("Failed to record notification attempt")
	}
}
