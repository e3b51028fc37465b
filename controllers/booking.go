// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wellbeing-backend/metrics"
	"wellbeing-backend/models"
	"wellbeing-backend/utils"
)

var bookingRequired = []string{
	"fullName", "email", "phone", "serviceType", "sessionMode", "preferredDate", "preferredTime",
}

// SubmitBooking handles POST /api/submit-booking/.
//
// The booking is persisted before any email is attempted. A notification
// failure is logged and never changes the response: the stored booking is the
// source of truth.
func (h *SubmissionHandler) SubmitBooking(c *gin.Context) {
	form := metrics.FormBooking

	data, ok := h.readPayload(c, form)
	if !ok {
		return
	}

	if err := utils.CheckRequired(data, bookingRequired); err != nil {
		h.rejectMissing(c, form, err)
		return
	}

	email := utils.NormalizeEmail(data["email"])
	if err := utils.CheckEmail(email); errors.Is(err, utils.ErrInvalidEmail) {
		h.reject(c, form, http.StatusBadRequest, "Please provide a valid email address.")
		return
	}

	mode := models.SessionMode(strings.ToLower(strings.TrimSpace(data["sessionMode"])))
	if !mode.Valid() {
		h.reject(c, form, http.StatusBadRequest, "Invalid session mode. Please choose in-person, online or telephone.")
		return
	}

	date, err := utils.ParseDate(data["preferredDate"])
	if err != nil {
		h.reject(c, form, http.StatusBadRequest, "Invalid date format. Please use YYYY-MM-DD.")
		return
	}

	clock, err := utils.ParseTime(data["preferredTime"])
	if err != nil {
		h.reject(c, form, http.StatusBadRequest, "Invalid time format. Please use HH:MM (24-hour) or HH:MM AM/PM.")
		return
	}

	booking := models.Booking{
		FullName:      strings.TrimSpace(data["fullName"]),
		Email:         email,
		Phone:         strings.TrimSpace(data["phone"]),
		ServiceType:   strings.TrimSpace(data["serviceType"]),
		SessionMode:   mode,
		PreferredDate: date,
		PreferredTime: clock.Format(utils.Clock24),
		Description:   strings.TrimSpace(data["description"]),
		Status:        models.StatusPending,
	}

	if err := h.store.CreateBooking(c.Request.Context(), &booking); err != nil {
		h.fail(c, form, err, "An error occurred while saving your booking. Please try again.")
		return
	}

	if err := h.notifier.NotifyBooking(c.Request.Context(), &booking); err != nil {
		h.logger.Warn().Err(err).Str("booking_id", booking.ID.String()).Msg("Booking notification failed")
	}

	h.succeed(c, form, "Booking submitted successfully! We will contact you soon.")
}
