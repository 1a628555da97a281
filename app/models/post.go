package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title into a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	now := time.Now()
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.Publish.IsZero() {
		p.Publish = now
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// BeforeUpdate refreshes the modification timestamp.
func (p *Post) BeforeUpdate() {
	p.UpdatedAt = time.Now()
}

// IsPublished reports whether the post is visible to readers.
func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// PublishNow transitions a draft to published. The publish timestamp is
// kept if the author set one ahead of time.
func (p *Post) PublishNow() {
	p.Status = StatusPublished
	if p.Publish.IsZero() {
		p.Publish = time.Now()
	}
	p.UpdatedAt = time.Now()
}

// PublishedOn reports whether the post's publish timestamp falls on the
// given calendar date.
func (p *Post) PublishedOn(year, month, day int) bool {
	y, m, d := p.Publish.Date()
	return y == year && int(m) == month && d == day
}

// CanonicalPath returns the date-partitioned URL path for the post.
func (p *Post) CanonicalPath() string {
	y, m, d := p.Publish.Date()
	return fmt.Sprintf("/%d/%d/%d/%s/", y, int(m), d, p.Slug)
}

// AddComment adds a comment to the post
func (p *Post) AddComment(comment *Comment) error {
	if comment == nil {
		return errors.New("comment cannot be nil")
	}

	comment.PostID = p.ID
	p.Comments = append(p.Comments, comment)
	return nil
}
