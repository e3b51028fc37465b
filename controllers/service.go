// controllers/service.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wellbeing-backend/models"
	"wellbeing-backend/utils"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required,oneof=consultancy counselling training"`
	Description string   `json:"description" binding:"required"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	IconClass   string   `json:"iconClass"`
	IsActive    *bool    `json:"isActive"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category" binding:"omitempty,oneof=consultancy counselling training"`
	Description *string  `json:"description"`
	Price       *string  `json:"price"`
	Features    []string `json:"features"`
	IconClass   *string  `json:"iconClass"`
	IsActive    *bool    `json:"isActive"`
}

type CreateBlogInput struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Author   string `json:"author"`
	ImageURL string `json:"imageUrl" binding:"omitempty,url"`
	Publish  bool   `json:"publish"`
}

// GET /admin/api/services
func (h *AdminHandler) ListServices(c *gin.Context) {
	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "Service")
		return
	}
	c.JSON(http.StatusOK, services)
}

// POST /admin/api/services
func (h *AdminHandler) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:        strings.TrimSpace(input.Name),
		Category:    models.ServiceCategory(input.Category),
		Description: input.Description,
		Price:       input.Price,
		Features:    models.JoinFeatures(input.Features),
		IconClass:   input.IconClass,
		IsActive:    true,
	}
	if service.Price == "" {
		service.Price = "Contact for pricing"
	}
	if service.IconClass == "" {
		service.IconClass = "bi-heart-pulse"
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := h.store.CreateService(c.Request.Context(), &service); err != nil {
		h.storeError(c, err, "Service")
		return
	}
	c.JSON(http.StatusCreated, service)
}

// PUT /admin/api/services/:id
func (h *AdminHandler) UpdateService(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := h.store.GetService(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "Service")
		return
	}

	if input.Name != nil {
		service.Name = strings.TrimSpace(*input.Name)
	}
	if input.Category != nil {
		service.Category = models.ServiceCategory(*input.Category)
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Features != nil {
		service.Features = models.JoinFeatures(input.Features)
	}
	if input.IconClass != nil {
		service.IconClass = *input.IconClass
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := h.store.SaveService(c.Request.Context(), service); err != nil {
		h.storeError(c, err, "Service")
		return
	}
	c.JSON(http.StatusOK, service)
}

// DELETE /admin/api/services/:id
func (h *AdminHandler) DeleteService(c *gin.Context) {
	id, ok := parseID(c, "service")
	if !ok {
		return
	}
	if err := h.store.DeleteService(c.Request.Context(), id); err != nil {
		h.storeError(c, err, "Service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// GET /admin/api/blogs
func (h *AdminHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.store.ListBlogs(c.Request.Context())
	if err != nil {
		h.storeError(c, err, "Blog post")
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// POST /admin/api/blogs
func (h *AdminHandler) CreateBlog(c *gin.Context) {
	var input CreateBlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	slug := utils.Slugify(input.Slug)
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}
	if slug == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Title must contain letters or digits")
		return
	}

	blog := models.Blog{
		Title:       strings.TrimSpace(input.Title),
		Slug:        slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		Author:      input.Author,
		ImageURL:    input.ImageURL,
		IsPublished: input.Publish,
	}
	if blog.Author == "" {
		blog.Author = h.cfg.DirectorName
	}
	if input.Publish {
		now := h.now()
		blog.PublishedAt = &now
	}

	if err := h.store.CreateBlog(c.Request.Context(), &blog); err != nil {
		h.storeError(c, err, "Blog post")
		return
	}
	c.JSON(http.StatusCreated, blog)
}

// PUT /admin/api/blogs/:id/publish
func (h *AdminHandler) PublishBlog(c *gin.Context) {
	id, ok := parseID(c, "blog")
	if !ok {
		return
	}
	var input ToggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	blog, err := h.store.SetBlogPublished(c.Request.Context(), id, *input.Value, h.now())
	if err != nil {
		h.storeError(c, err, "Blog post")
		return
	}
	c.JSON(http.StatusOK, blog)
}
