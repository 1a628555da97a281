package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Status is a post's publication state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Post represents a blog post. A post is visible to readers only while
// its Status is StatusPublished. The (publish date, slug) pair is unique
// across all posts.
type Post struct {
	ID        int        `json:"id" validate:"gte=0"`
	Title     string     `json:"title" validate:"required,max=250"`
	Slug      string     `json:"slug" validate:"required,max=250"`
	AuthorID  int        `json:"author_id" validate:"gte=0"`
	Body      string     `json:"body" validate:"required"`
	Publish   time.Time  `json:"publish"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Status    Status     `json:"status" validate:"required,oneof=draft published"`
	Comments  []*Comment `json:"comments,omitempty" validate:"-"`
}

// Comment represents a reader comment on a post. Only comments with
// Active set are shown publicly; moderation clears the flag elsewhere.
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	PostID    int       `json:"post_id" validate:"required,gte=1"`
	Name      string    `json:"name" validate:"required,max=80"`
	Email     string    `json:"email" validate:"required,email"`
	Body      string    `json:"body" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Active    bool      `json:"active"`
	Post      *Post     `json:"-" validate:"-"`
}

// User is a post author. Deleting a user deletes all posts they wrote.
type User struct {
	ID           int       `json:"id" validate:"gte=0"`
	Username     string    `json:"username" validate:"required,min=2,max=150"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash []byte    `json:"password_hash" validate:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
