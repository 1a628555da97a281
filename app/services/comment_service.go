package services

import (
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for reader comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment validates the submitted form against the given published
// post. Field problems come back as FieldErrors with no comment
// persisted; a nil error plus a comment means it was stored.
func (s *CommentService) CreateComment(post *models.Post, form *models.CommentForm) (*models.Comment, models.FieldErrors, error) {
	if errs := models.Check(form); errs.Any() {
		return nil, errs, nil
	}

	comment := form.Comment(post)
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, nil, err
	}
	return comment, models.FieldErrors{}, nil
}

// ListActiveComments returns the visible comments for a post, oldest
// first.
func (s *CommentService) ListActiveComments(postID int) ([]*models.Comment, error) {
	return s.commentRepo.ListActiveByPost(postID)
}
