// models/blog.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Blog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Slug        string     `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	Author      string     `gorm:"size:100" json:"author"`
	ImageURL    string     `gorm:"size:300" json:"imageUrl"`
	IsPublished bool       `gorm:"index;not null" json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) (err error) {
	ensureID(&b.ID)
	return
}
