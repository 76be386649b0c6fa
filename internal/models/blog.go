package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Blog struct {
	gorm.Model
	Title       string     `gorm:"column:title;not null" json:"title"`
	Slug        string     `gorm:"column:slug;unique;not null" json:"slug"`
	Excerpt     string     `gorm:"column:excerpt;size:500" json:"excerpt"`
	Content     string     `gorm:"column:content;type:text" json:"content"`
	CoverImage  string     `gorm:"column:cover_image" json:"coverImage,omitempty"`
	AuthorID    uint       `gorm:"column:author_id;index" json:"authorId"`
	Author      User       `json:"author,omitempty"`
	Published   bool       `gorm:"column:published;default:false" json:"published"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"publishedAt,omitempty"`
}

func (Blog) TableName() string {
	return "blogs"
}

// BlogBook groups published blogs into an ordered table of contents.
type BlogBook struct {
	gorm.Model
	Title           string         `gorm:"column:title;not null" json:"title"`
	Slug            string         `gorm:"column:slug;unique;not null" json:"slug"`
	Description     string         `gorm:"column:description;size:500" json:"description"`
	Published       bool           `gorm:"column:published;default:false" json:"published"`
	TableOfContents datatypes.JSON `gorm:"column:table_of_contents" json:"tableOfContents,omitempty"` // ordered blog ids
}

func (BlogBook) TableName() string {
	return "blog_books"
}
