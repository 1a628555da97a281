package models

import (
	"errors"
	"time"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	c.Active = true
}

// BeforeUpdate refreshes the modification timestamp.
func (c *Comment) BeforeUpdate() {
	c.UpdatedAt = time.Now()
}

// SetPost links the comment to its parent post. post must not be nil.
func (c *Comment) SetPost(post *Post) {
	c.Post = post
	c.PostID = post.ID
}
