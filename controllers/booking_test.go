package controllers

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"wellbeing-backend/models"
	"wellbeing-backend/repository"
)

const validBooking = `{
	"fullName": "Amina Otieno",
	"email": "  Amina@Example.com ",
	"phone": "+254 711 111 111",
	"serviceType": "individual",
	"sessionMode": "online",
	"preferredDate": "2025-06-14",
	"preferredTime": "2:30 PM",
	"description": "Work stress"
}`

func countBookings(t *testing.T, store *repository.Store) int {
	t.Helper()
	bookings, err := store.ListBookings(context.Background(), repository.BookingFilter{})
	if err != nil {
		t.Fatal(err)
	}
	return len(bookings)
}

func TestSubmitBooking_Success(t *testing.T) {
	store := newTestStore(t)
	notifier := &fakeNotifier{}
	r := newSubmissionRouter(store, notifier)

	w := doJSON(r, http.MethodPost, "/api/submit-booking/", validBooking)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	resp := decodeResponse(t, w)
	if !resp.Success || resp.Message != "Booking submitted successfully! We will contact you soon." {
		t.Errorf("response = %+v", resp)
	}

	bookings, err := store.ListBookings(context.Background(), repository.BookingFilter{})
	if err != nil || len(bookings) != 1 {
		t.Fatalf("bookings = %v, %v", bookings, err)
	}
	b := bookings[0]
	if b.Email != "amina@example.com" || b.PreferredTime != "14:30" || b.Status != models.StatusPending ||
		b.SessionMode != models.SessionOnline || b.PreferredDate.Format("2006-01-02") != "2025-06-14" {
		t.Errorf("stored booking = %+v", b)
	}
	if len(notifier.bookings) != 1 || notifier.bookings[0].ID != b.ID {
		t.Errorf("notifier saw %d bookings", len(notifier.bookings))
	}
}

func TestSubmitBooking_TwiceCreatesTwoRecords(t *testing.T) {
	store := newTestStore(t)
	notifier := &fakeNotifier{}
	r := newSubmissionRouter(store, notifier)

	for i := 0; i < 2; i++ {
		if w := doJSON(r, http.MethodPost, "/api/submit-booking/", validBooking); w.Code != http.StatusOK {
			t.Fatalf("attempt %d status = %d", i+1, w.Code)
		}
	}
	if n := countBookings(t, store); n != 2 {
		t.Errorf("bookings = %d, want 2", n)
	}
	if len(notifier.bookings) != 2 || notifier.bookings[0].ID == notifier.bookings[1].ID {
		t.Error("each booking should be notified separately")
	}
}

func TestSubmitBooking_NotifierFailureStillSucceeds(t *testing.T) {
	store := newTestStore(t)
	r := newSubmissionRouter(store, &fakeNotifier{err: errors.New("smtp: connection refused")})

	w := doJSON(r, http.MethodPost, "/api/submit-booking/", validBooking)
	if w.Code != http.StatusOK || !decodeResponse(t, w).Success {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	if n := countBookings(t, store); n != 1 {
		t.Errorf("bookings = %d, want 1", n)
	}
}

func TestSubmitBooking_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
		missing []string
	}{
		{
			name:    "missing fields are all listed",
			body:    `{"fullName":"A","email":"a@b.co","phone":"  ","serviceType":"individual","preferredDate":"2025-06-14","preferredTime":"10:00"}`,
			message: "Please fill in all required fields. Missing: phone, sessionMode.",
			missing: []string{"phone", "sessionMode"},
		},
		{
			name:    "single missing field",
			body:    `{"fullName":"A","email":"a@b.co","phone":"1","serviceType":"individual","sessionMode":"online","preferredDate":"2025-06-14"}`,
			message: "Missing required field: preferredTime.",
			missing: []string{"preferredTime"},
		},
		{
			name:    "invalid email",
			body:    `{"fullName":"A","email":"nobody","phone":"1","serviceType":"individual","sessionMode":"online","preferredDate":"2025-06-14","preferredTime":"10:00"}`,
			message: "Please provide a valid email address.",
		},
		{
			name:    "unknown session mode",
			body:    `{"fullName":"A","email":"a@b.co","phone":"1","serviceType":"individual","sessionMode":"hologram","preferredDate":"2025-06-14","preferredTime":"10:00"}`,
			message: "Invalid session mode. Please choose in-person, online or telephone.",
		},
		{
			name:    "invalid date",
			body:    `{"fullName":"A","email":"a@b.co","phone":"1","serviceType":"individual","sessionMode":"online","preferredDate":"2025-13-40","preferredTime":"10:00"}`,
			message: "Invalid date format. Please use YYYY-MM-DD.",
		},
		{
			name:    "ambiguous time",
			body:    `{"fullName":"A","email":"a@b.co","phone":"1","serviceType":"individual","sessionMode":"online","preferredDate":"2025-06-14","preferredTime":"2:30"}`,
			message: "Invalid time format. Please use HH:MM (24-hour) or HH:MM AM/PM.",
		},
		{
			name:    "impossible time",
			body:    `{"fullName":"A","email":"a@b.co","phone":"1","serviceType":"individual","sessionMode":"online","preferredDate":"2025-06-14","preferredTime":"25:99"}`,
			message: "Invalid time format. Please use HH:MM (24-hour) or HH:MM AM/PM.",
		},
		{
			name:    "malformed json",
			body:    `{"fullName": "A",`,
			message: "Invalid JSON data. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			notifier := &fakeNotifier{}
			r := newSubmissionRouter(store, notifier)

			w := doJSON(r, http.MethodPost, "/api/submit-booking/", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			resp := decodeResponse(t, w)
			if resp.Success || resp.Message != tt.message {
				t.Errorf("response = %+v, want message %q", resp, tt.message)
			}
			if !reflect.DeepEqual(resp.MissingFields, tt.missing) {
				t.Errorf("missingFields = %v, want %v", resp.MissingFields, tt.missing)
			}
			if n := countBookings(t, store); n != 0 {
				t.Errorf("bookings = %d, want 0", n)
			}
			if len(notifier.bookings) != 0 {
				t.Error("notifier should not run for a rejected booking")
			}
		})
	}
}

func TestSubmitBooking_StoreFailure(t *testing.T) {
	notifier := &fakeNotifier{}
	r := newSubmissionRouter(failingStore{newTestStore(t)}, notifier)

	w := doJSON(r, http.MethodPost, "/api/submit-booking/", validBooking)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Success || resp.Message != "An error occurred while saving your booking. Please try again." {
		t.Errorf("response = %+v", resp)
	}
	if len(notifier.bookings) != 0 {
		t.Error("nothing should be notified when the booking was not stored")
	}
}
