// controllers/submission.go
package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wellbeing-backend/metrics"
	"wellbeing-backend/models"
	"wellbeing-backend/utils"
)

const maxPayloadBytes = 64 << 10

// SubmissionStore is the part of the record store the public forms write to.
type SubmissionStore interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	CreateContact(ctx context.Context, submission *models.ContactSubmission) error
	CreateSubscriber(ctx context.Context, subscriber *models.NewsletterSubscriber) error
	SubscriberExists(ctx context.Context, email string) (bool, error)
}

// SubmissionNotifier sends the emails that follow a stored submission.
type SubmissionNotifier interface {
	NotifyBooking(ctx context.Context, booking *models.Booking) error
	NotifyFooterInquiry(ctx context.Context, submission *models.ContactSubmission) error
}

// SubmissionHandler serves the booking, contact and newsletter forms. It holds
// no per-request state.
type SubmissionHandler struct {
	store    SubmissionStore
	notifier SubmissionNotifier
	logger   zerolog.Logger
}

func NewSubmissionHandler(store SubmissionStore, notifier SubmissionNotifier, logger zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{store: store, notifier: notifier, logger: logger}
}

// readPayload decodes the JSON body, answering 400 itself when it cannot.
func (h *SubmissionHandler) readPayload(c *gin.Context, form string) (map[string]string, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.reject(c, form, http.StatusBadRequest, "Your message is too long. Please shorten it and try again.")
			return nil, false
		}
		h.reject(c, form, http.StatusBadRequest, "Invalid JSON data. Please try again.")
		return nil, false
	}

	data, err := utils.DecodePayload(body)
	if err != nil {
		h.reject(c, form, http.StatusBadRequest, "Invalid JSON data. Please try again.")
		return nil, false
	}
	return data, true
}

// rejectMissing answers a required-field failure listing every missing field.
func (h *SubmissionHandler) rejectMissing(c *gin.Context, form string, err error) {
	metrics.RecordSubmission(form, metrics.OutcomeInvalid)
	var missing *utils.ValidationError
	if errors.As(err, &missing) {
		utils.RespondMissingFields(c, missing)
		return
	}
	utils.RespondWithError(c, http.StatusBadRequest, "Please fill in all required fields.")
}

func (h *SubmissionHandler) reject(c *gin.Context, form string, status int, message string) {
	metrics.RecordSubmission(form, metrics.OutcomeInvalid)
	utils.RespondWithError(c, status, message)
}

// fail logs an unexpected fault in full and answers with a generic 500.
func (h *SubmissionHandler) fail(c *gin.Context, form string, err error, message string) {
	metrics.RecordSubmission(form, metrics.OutcomeError)
	h.logger.Error().Err(err).Str("form", form).Msg("Submission failed")
	utils.RespondWithError(c, http.StatusInternalServerError, message)
}

func (h *SubmissionHandler) succeed(c *gin.Context, form, message string) {
	metrics.RecordSubmission(form, metrics.OutcomeSuccess)
	utils.RespondSuccess(c, message)
}
