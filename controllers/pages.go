// controllers/pages.go
package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wellbeing-backend/config"
	"wellbeing-backend/models"
	"wellbeing-backend/repository"
)

const homeBlogLimit = 6

// PageStore is the read-only slice of the record store the pages use.
type PageStore interface {
	ActiveServices(ctx context.Context, category models.ServiceCategory) ([]models.Service, error)
	PublishedBlogs(ctx context.Context, limit int) ([]models.Blog, error)
	PublishedBlogBySlug(ctx context.Context, slug string) (*models.Blog, error)
}

type PageHandler struct {
	store  PageStore
	cfg    *config.Config
	logger zerolog.Logger
}

func NewPageHandler(store PageStore, cfg *config.Config, logger zerolog.Logger) *PageHandler {
	return &PageHandler{store: store, cfg: cfg, logger: logger}
}

func (h *PageHandler) page(extra gin.H) gin.H {
	data := gin.H{
		"SiteName":   h.cfg.SiteName,
		"SitePhone":  h.cfg.SitePhone,
		"SiteEmail":  h.cfg.AdminEmail,
		"Categories": models.Categories(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// Index renders the landing page with active services and the latest posts.
func (h *PageHandler) Index(c *gin.Context) {
	services, err := h.store.ActiveServices(c.Request.Context(), "")
	if err != nil {
		h.serverError(c, err)
		return
	}
	blogs, err := h.store.PublishedBlogs(c.Request.Context(), homeBlogLimit)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", h.page(gin.H{
		"Services": services,
		"Blogs":    blogs,
	}))
}

// Services renders the service listing, optionally for one category.
func (h *PageHandler) Services(c *gin.Context) {
	category := models.ServiceCategory(c.Query("category"))
	if category != "" && !category.Valid() {
		category = ""
	}
	services, err := h.store.ActiveServices(c.Request.Context(), category)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "services.html", h.page(gin.H{
		"Services": services,
		"Selected": category,
	}))
}

func (h *PageHandler) BlogList(c *gin.Context) {
	blogs, err := h.store.PublishedBlogs(c.Request.Context(), 0)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "blog_list.html", h.page(gin.H{"Blogs": blogs}))
}

func (h *PageHandler) BlogDetail(c *gin.Context) {
	blog, err := h.store.PublishedBlogBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, repository.ErrNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "blog_detail.html", h.page(gin.H{"Blog": blog}))
}

func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", h.page(nil))
}

func (h *PageHandler) serverError(c *gin.Context, err error) {
	h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Page rendering failed")
	c.HTML(http.StatusInternalServerError, "error.html", h.page(nil))
}
