// controllers/newsletter.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wellbeing-backend/metrics"
	"wellbeing-backend/models"
	"wellbeing-backend/repository"
	"wellbeing-backend/utils"
)

const alreadySubscribed = "This email is already subscribed to our newsletter."

// SubscribeNewsletter handles /api/subscribe-newsletter/. Only POST is accepted.
func (h *SubmissionHandler) SubscribeNewsletter(c *gin.Context) {
	form := metrics.FormNewsletter

	if c.Request.Method != http.MethodPost {
		utils.RespondWithError(c, http.StatusMethodNotAllowed, "Only POST method is allowed.")
		return
	}

	data, ok := h.readPayload(c, form)
	if !ok {
		return
	}

	email := utils.NormalizeEmail(data["email"])
	if email == "" {
		h.reject(c, form, http.StatusBadRequest, "Email is required.")
		return
	}
	if err := utils.CheckEmail(email); errors.Is(err, utils.ErrInvalidEmail) {
		h.reject(c, form, http.StatusBadRequest, "Please enter a valid email address.")
		return
	}

	exists, err := h.store.SubscriberExists(c.Request.Context(), email)
	if err != nil {
		h.fail(c, form, err, "We could not process your subscription. Please try again.")
		return
	}
	if exists {
		h.duplicate(c)
		return
	}

	subscriber := models.NewsletterSubscriber{Email: email, IsActive: true}
	if err := h.store.CreateSubscriber(c.Request.Context(), &subscriber); err != nil {
		// lost a race with a concurrent signup for the same address
		if errors.Is(err, repository.ErrDuplicate) {
			h.duplicate(c)
			return
		}
		h.fail(c, form, err, "We could not process your subscription. Please try again.")
		return
	}

	h.succeed(c, form, "Thank you for subscribing!")
}

func (h *SubmissionHandler) duplicate(c *gin.Context) {
	metrics.RecordSubmission(metrics.FormNewsletter, metrics.OutcomeDuplicate)
	utils.RespondWithError(c, http.StatusBadRequest, alreadySubscribed)
}
