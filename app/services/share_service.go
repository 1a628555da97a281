package services

import (
	"fmt"
	"strings"

	"inkwell/app/mail"
	"inkwell/app/models"
)

// ShareService emails post recommendations on behalf of readers.
type ShareService struct {
	mailer  mail.Mailer
	baseURL string
}

// NewShareService creates a new ShareService
func NewShareService(mailer mail.Mailer, baseURL string) *ShareService {
	return &ShareService{
		mailer:  mailer,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SharePost validates the share form and, when valid, mails a link to
// the post's canonical page. The bool result is whether a mail went out.
func (s *ShareService) SharePost(post *models.Post, form *models.EmailPostForm) (bool, models.FieldErrors, error) {
	if errs := models.Check(form); errs.Any() {
		return false, errs, nil
	}

	postURL := s.baseURL + post.CanonicalPath()
	subject := fmt.Sprintf("%s (%s) recommends you read %s", form.Name, form.Email, post.Title)
	message := fmt.Sprintf("Read %s at %s\n\n%s's comments: %s", post.Title, postURL, form.Name, form.Comments)

	if err := s.mailer.Send(subject, message, []string{form.To}); err != nil {
		return false, nil, err
	}
	return true, models.FieldErrors{}, nil
}
