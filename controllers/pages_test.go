package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wellbeing-backend/models"
)

func seedPages(t *testing.T) PageStore {
	t.Helper()
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.SeedServices(ctx); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateService(ctx, &models.Service{Name: "Hidden Service", Category: models.CategoryTraining, IsActive: false}); err != nil {
		t.Fatal(err)
	}
	published := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	posts := []*models.Blog{
		{Title: "Coping with Burnout", Slug: "coping-with-burnout", Excerpt: "Signs and first steps.", Content: "First paragraph.\n\nSecond paragraph.", Author: "Dr. Test", IsPublished: true, PublishedAt: &published},
		{Title: "Unfinished Draft", Slug: "unfinished-draft", Excerpt: "Not yet.", Content: "Draft body."},
	}
	for _, p := range posts {
		if err := store.CreateBlog(ctx, p); err != nil {
			t.Fatal(err)
		}
	}
	return store
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestIndexPage(t *testing.T) {
	r := newPageRouter(t, seedPages(t))

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Test Well-being", "<h3>Counselling &amp; Psychotherapy</h3>", "Coping with Burnout", "/api/submit-booking/"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
	for _, hidden := range []string{"Hidden Service", "Unfinished Draft"} {
		if strings.Contains(body, hidden) {
			t.Errorf("index should not show %q", hidden)
		}
	}
}

func TestServicesPage_Category(t *testing.T) {
	r := newPageRouter(t, seedPages(t))

	w := get(r, "/services?category=training")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<h3>Training &amp; Capacity Building</h3>") {
		t.Error("training service missing")
	}
	if strings.Contains(body, "Counselling &amp; Psychotherapy</h3>") {
		t.Error("other categories should be filtered out")
	}

	// unknown categories fall back to the full listing
	w = get(r, "/services?category=astrology")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "<h3>Consultancy &amp; Advisory</h3>") {
		t.Errorf("fallback listing status = %d", w.Code)
	}
}

func TestBlogPages(t *testing.T) {
	r := newPageRouter(t, seedPages(t))

	w := get(r, "/blog")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Coping with Burnout") {
		t.Errorf("blog list status = %d", w.Code)
	}

	w = get(r, "/blog/coping-with-burnout")
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"<p>First paragraph.</p>", "<p>Second paragraph.</p>", "May 20, 2025"} {
		if !strings.Contains(body, want) {
			t.Errorf("detail missing %q", want)
		}
	}

	for _, path := range []string{"/blog/unfinished-draft", "/blog/no-such-post", "/nowhere"} {
		if w := get(r, path); w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "Page not found") {
			t.Errorf("%s status = %d, want 404 page", path, w.Code)
		}
	}
}

type brokenPageStore struct{ PageStore }

func (brokenPageStore) ActiveServices(ctx context.Context, category models.ServiceCategory) ([]models.Service, error) {
	return nil, errors.New("connection reset")
}

func TestIndexPage_StoreError(t *testing.T) {
	r := newPageRouter(t, brokenPageStore{newTestStore(t)})
	if w := get(r, "/"); w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
