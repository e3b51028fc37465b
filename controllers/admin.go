// controllers/admin.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wellbeing-backend/config"
	"wellbeing-backend/models"
	"wellbeing-backend/repository"
	"wellbeing-backend/utils"
)

// AdminStore is the record store as seen by the moderation API.
type AdminStore interface {
	ListBookings(ctx context.Context, filter repository.BookingFilter) ([]models.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
	NotificationLogs(ctx context.Context, bookingID uuid.UUID) ([]models.NotificationLog, error)
	ListContacts(ctx context.Context, unreadOnly bool) ([]models.ContactSubmission, error)
	MarkContactRead(ctx context.Context, id uuid.UUID, read bool) (*models.ContactSubmission, error)
	ListSubscribers(ctx context.Context, activeOnly bool) ([]models.NewsletterSubscriber, error)
	SetSubscriberActive(ctx context.Context, id uuid.UUID, active bool) (*models.NewsletterSubscriber, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*models.Service, error)
	CreateService(ctx context.Context, service *models.Service) error
	SaveService(ctx context.Context, service *models.Service) error
	DeleteService(ctx context.Context, id uuid.UUID) error
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	CreateBlog(ctx context.Context, blog *models.Blog) error
	SetBlogPublished(ctx context.Context, id uuid.UUID, published bool, now time.Time) (*models.Blog, error)
	Counts(ctx context.Context) (repository.Counts, error)
}

type AdminHandler struct {
	store  AdminStore
	cfg    *config.Config
	logger zerolog.Logger
	now    func() time.Time
}

func NewAdminHandler(store AdminStore, cfg *config.Config, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{store: store, cfg: cfg, logger: logger, now: time.Now}
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

type ToggleInput struct {
	Value *bool `json:"value" binding:"required"`
}

// parseID reads the :id path parameter, answering 400 itself when malformed.
func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+what+" ID format")
		return uuid.Nil, false
	}
	return id, true
}

// storeError maps store errors to responses; unexpected ones are logged.
func (h *AdminHandler) storeError(c *gin.Context, err error, what string) {
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondWithError(c, http.StatusNotFound, what+" not found")
		return
	}
	if errors.Is(err, repository.ErrDuplicate) {
		utils.RespondWithError(c, http.StatusConflict, what+" already exists")
		return
	}
	h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Admin request failed")
	utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
}

// GET /admin/api/bookings?status=pending
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var filter repository.BookingFilter
	if status := c.Query("status"); status != "" {
		if !models.BookingStatus(status).Valid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		filter.Statuses = []models.BookingStatus{models.BookingStatus(status)}
	}

	bookings, err := h.store.ListBookings(c.Request.Context(), filter)
	if err != nil {
		h.storeError(c, err, "Booking")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /admin/api/bookings/:id
func (h *AdminHandler) GetBooking(c *gin.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}
	booking, err := h.store.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "Booking")
		return
	}
	notifications, err := h.store.NotificationLogs(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "Booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking, "notifications": notifications})
}

// PUT /admin/api/bookings/:id/status
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c, "booking")
	if !ok {
		return
	}
	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := h.store.UpdateBookingStatus(c.Request.Context(), id, models.BookingStatus(input.Status))
	if err != nil {
		h.storeError(c, err, "Booking")
		return
	}
	h.logger.Info().Str("booking_id", id.String()).Str("status", input.Status).Msg("Booking status changed")
	c.JSON(http.StatusOK, booking)
}

// GET /admin/api/contacts?unread=true
func (h *AdminHandler) ListContacts(c *gin.Context) {
	contacts, err := h.store.ListContacts(c.Request.Context(), c.Query("unread") == "true")
	if err != nil {
		h.storeError(c, err, "Contact submission")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// PUT /admin/api/contacts/:id/read
func (h *AdminHandler) MarkContactRead(c *gin.Context) {
	id, ok := parseID(c, "contact")
	if !ok {
		return
	}
	var input ToggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	contact, err := h.store.MarkContactRead(c.Request.Context(), id, *input.Value)
	if err != nil {
		h.storeError(c, err, "Contact submission")
		return
	}
	c.JSON(http.StatusOK, contact)
}

// GET /admin/api/subscribers?active=true
func (h *AdminHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.store.ListSubscribers(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		h.storeError(c, err, "Subscriber")
		return
	}
	c.JSON(http.StatusOK, subscribers)
}

// PUT /admin/api/subscribers/:id/active
func (h *AdminHandler) SetSubscriberActive(c *gin.Context) {
	id, ok := parseID(c, "subscriber")
	if !ok {
		return
	}
	var input ToggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	subscriber, err := h.store.SetSubscriberActive(c.Request.Context(), id, *input.Value)
	if err != nil {
		h.storeError(c, err, "Subscriber")
		return
	}
	c.JSON(http.StatusOK, subscriber)
}
