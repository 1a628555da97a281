package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CommentForm carries the fields a reader submits with a new comment.
type CommentForm struct {
	Name  string `validate:"required,max=80"`
	Email string `validate:"required,email"`
	Body  string `validate:"required"`
}

// EmailPostForm carries the fields of the share-by-email form.
type EmailPostForm struct {
	Name     string `validate:"required,max=80"`
	Email    string `validate:"required,email"`
	To       string `validate:"required,email"`
	Comments string `validate:"max=2000"`
}

// FieldErrors maps a form field name to a human-readable problem. Forms
// that fail validation are re-rendered with these inline, never turned
// into a hard failure.
type FieldErrors map[string]string

func (fe FieldErrors) Any() bool { return len(fe) > 0 }

type trimmable interface {
	trim()
}

func (f *CommentForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Body = strings.TrimSpace(f.Body)
}

func (f *EmailPostForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.To = strings.TrimSpace(f.To)
	f.Comments = strings.TrimSpace(f.Comments)
}

// Check trims a form's fields and runs validator tags over it, folding
// the result into per-field messages. Trimming happens first so a field
// holding only whitespace fails required like an empty one.
func Check(form interface{}) FieldErrors {
	if t, ok := form.(trimmable); ok {
		t.trim()
	}

	errs := FieldErrors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errs[field] = "this field is required"
		case "email":
			errs[field] = "enter a valid email address"
		case "max":
			errs[field] = "this field is too long"
		default:
			errs[field] = "invalid value"
		}
	}
	return errs
}

// Comment builds an unsaved comment from the form for the given post.
func (f *CommentForm) Comment(post *Post) *Comment {
	f.trim()
	c := &Comment{
		Name:  f.Name,
		Email: f.Email,
		Body:  f.Body,
	}
	c.SetPost(post)
	return c
}
