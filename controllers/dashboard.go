// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wellbeing-backend/models"
	"wellbeing-backend/repository"
	"wellbeing-backend/utils"
)

const (
	upcomingWindowDays = 7
	recentContactLimit = 5
)

type DashboardOverview struct {
	Counts               repository.Counts     `json:"counts"`
	UpcomingAppointments []UpcomingAppointment `json:"upcomingAppointments"`
	RecentContacts       []RecentContact       `json:"recentContacts"`
}

type UpcomingAppointment struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Service string `json:"service"`
	Mode    string `json:"mode"`
	Time    string `json:"time"`
	Date    string `json:"date"` // e.g. "Tomorrow", "in 3 days"
	Status  string `json:"status"`
}

type RecentContact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Subject     string `json:"subject"`
	SubmittedAt string `json:"submittedAt"` // e.g. "Today", "2 days ago"
}

// GetDashboardOverview handles GET /admin/api/dashboard.
func (h *AdminHandler) GetDashboardOverview(c *gin.Context) {
	ctx := c.Request.Context()
	now := h.now()

	counts, err := h.store.Counts(ctx)
	if err != nil {
		h.storeError(c, err, "Dashboard")
		return
	}

	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, upcomingWindowDays)
	bookings, err := h.store.ListBookings(ctx, repository.BookingFilter{
		Statuses: []models.BookingStatus{models.StatusPending, models.StatusConfirmed},
		DateFrom: &from,
		DateTo:   &to,
	})
	if err != nil {
		h.storeError(c, err, "Dashboard")
		return
	}

	contacts, err := h.store.ListContacts(ctx, true)
	if err != nil {
		h.storeError(c, err, "Dashboard")
		return
	}

	overview := DashboardOverview{
		Counts:               counts,
		UpcomingAppointments: make([]UpcomingAppointment, 0, len(bookings)),
		RecentContacts:       make([]RecentContact, 0, recentContactLimit),
	}
	for _, b := range bookings {
		overview.UpcomingAppointments = append(overview.UpcomingAppointments, UpcomingAppointment{
			ID:      b.ID.String(),
			Name:    b.FullName,
			Service: b.ServiceLabel(),
			Mode:    b.SessionMode.Label(),
			Time:    b.PreferredTime,
			Date:    utils.RelativeDay(now, b.PreferredDate),
			Status:  string(b.Status),
		})
	}
	for i, contact := range contacts {
		if i == recentContactLimit {
			break
		}
		overview.RecentContacts = append(overview.RecentContacts, RecentContact{
			ID:          contact.ID.String(),
			Name:        contact.Name,
			Subject:     contact.Subject,
			SubmittedAt: utils.RelativeDay(now, contact.SubmittedAt),
		})
	}

	c.JSON(http.StatusOK, overview)
}
