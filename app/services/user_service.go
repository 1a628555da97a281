package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// UserService handles author accounts. Deleting an author takes their
// posts, and those posts' comments, with them.
type UserService struct {
	userRepo    repositories.UserRepository
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreateUser validates and persists a new author with a hashed password.
func (s *UserService) CreateUser(username, email, password string) (*models.User, error) {
	user := &models.User{Username: username, Email: email}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	user.BeforeCreate()
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByUsername retrieves an author account.
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	return s.userRepo.GetByUsername(username)
}

// DeleteUser removes an author and cascades to everything they wrote.
func (s *UserService) DeleteUser(id int) error {
	posts, err := s.postRepo.ListByAuthor(id)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}
	for _, post := range posts {
		comments, err := s.commentRepo.ListByPost(post.ID)
		if err != nil {
			return fmt.Errorf("failed to list comments for post %d: %w", post.ID, err)
		}
		for _, comment := range comments {
			if err := s.commentRepo.Delete(comment.ID); err != nil {
				return fmt.Errorf("failed to delete comment %d: %w", comment.ID, err)
			}
		}
		if err := s.postRepo.Delete(post.ID); err != nil {
			return fmt.Errorf("failed to delete post %d: %w", post.ID, err)
		}
	}
	return s.userRepo.Delete(id)
}
