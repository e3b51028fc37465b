// controllers/contact.go
package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"wellbeing-backend/metrics"
	"wellbeing-backend/models"
	"wellbeing-backend/utils"
)

var (
	contactRequired       = []string{"name", "email", "subject", "message"}
	footerContactRequired = []string{"name", "email", "message"}
)

// SubmitContact handles POST /api/submit-contact/.
func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	form := metrics.FormContact

	data, ok := h.readPayload(c, form)
	if !ok {
		return
	}
	if err := utils.CheckRequired(data, contactRequired); err != nil {
		h.rejectMissing(c, form, err)
		return
	}

	submission := models.ContactSubmission{
		Name:    strings.TrimSpace(data["name"]),
		Email:   utils.NormalizeEmail(data["email"]),
		Subject: strings.TrimSpace(data["subject"]),
		Message: strings.TrimSpace(data["message"]),
	}
	if err := h.store.CreateContact(c.Request.Context(), &submission); err != nil {
		h.fail(c, form, err, "Error sending message. Please try again.")
		return
	}

	h.succeed(c, form, "Message sent successfully! We will get back to you soon.")
}

// FooterContact handles POST /api/footer-contact/, the quick form in the site
// footer. The admin notice is best effort and may fail silently.
func (h *SubmissionHandler) FooterContact(c *gin.Context) {
	form := metrics.FormFooterContact

	data, ok := h.readPayload(c, form)
	if !ok {
		return
	}
	if err := utils.CheckRequired(data, footerContactRequired); err != nil {
		h.rejectMissing(c, form, err)
		return
	}

	submission := models.ContactSubmission{
		Name:    strings.TrimSpace(data["name"]),
		Email:   utils.NormalizeEmail(data["email"]),
		Subject: models.FooterSubject,
		Message: strings.TrimSpace(data["message"]),
	}
	if err := h.store.CreateContact(c.Request.Context(), &submission); err != nil {
		h.fail(c, form, err, "An error occurred while submitting your message.")
		return
	}

	if err := h.notifier.NotifyFooterInquiry(c.Request.Context(), &submission); err != nil {
		h.logger.Debug().Err(err).Str("contact_id", submission.ID.String()).Msg("Footer inquiry notice not sent")
	}

	h.succeed(c, form, "Thank you for reaching out! We'll get back to you soon.")
}
