package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"wellbeing-backend/config"
	"wellbeing-backend/models"
	"wellbeing-backend/repository"
	"wellbeing-backend/utils"
	"wellbeing-backend/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	store := repository.New(db)
	if err := store.Migrate(); err != nil {
		t.Fatal(err)
	}
	return store
}

type fakeNotifier struct {
	mu       sync.Mutex
	bookings []*models.Booking
	footers  []*models.ContactSubmission
	err      error
}

func (n *fakeNotifier) NotifyBooking(ctx context.Context, booking *models.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.bookings = append(n.bookings, booking)
	return n.err
}

func (n *fakeNotifier) NotifyFooterInquiry(ctx context.Context, submission *models.ContactSubmission) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.footers = append(n.footers, submission)
	return n.err
}

// failingStore makes every write fail.
type failingStore struct{ *repository.Store }

var errStoreDown = errors.New("database unavailable")

func (failingStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return errStoreDown
}

func (failingStore) CreateContact(ctx context.Context, submission *models.ContactSubmission) error {
	return errStoreDown
}

func testConfig() *config.Config {
	return &config.Config{
		SiteName:       "Test Well-being",
		SitePhone:      "+254 700 000 000",
		AdminEmail:     "admin@wellbeing.test",
		DirectorName:   "Dr. Test",
		AdminUsername:  "admin",
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
	}
}

func newSubmissionRouter(store SubmissionStore, notifier SubmissionNotifier) *gin.Engine {
	h := NewSubmissionHandler(store, notifier, zerolog.Nop())
	r := gin.New()
	r.POST("/api/submit-booking/", h.SubmitBooking)
	r.POST("/api/submit-contact/", h.SubmitContact)
	r.POST("/api/footer-contact/", h.FooterContact)
	r.Any("/api/subscribe-newsletter/", h.SubscribeNewsletter)
	return r
}

func newPageRouter(t *testing.T, store PageStore) *gin.Engine {
	t.Helper()
	tmpl, err := web.Templates()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	h := NewPageHandler(store, testConfig(), zerolog.Nop())
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.NoRoute(h.NotFound)
	r.GET("/", h.Index)
	r.GET("/services", h.Services)
	r.GET("/blog", h.BlogList)
	r.GET("/blog/:slug", h.BlogDetail)
	return r
}

func doJSON(r http.Handler, method, path, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp
}
