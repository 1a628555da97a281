package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/pagination"
	"inkwell/app/repositories"
)

// PostService handles business logic for blog posts. Every reader-facing
// lookup goes through the published view; drafts are reachable only by
// author tooling.
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	pageSize    int
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, pageSize int) *PostService {
	if pageSize < 1 {
		pageSize = pagination.DefaultPageSize
	}
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		pageSize:    pageSize,
	}
}

// CreatePost validates and persists a new post.
func (s *PostService) CreatePost(post *models.Post) error {
	post.BeforeCreate()
	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}
	return s.postRepo.Create(post)
}

// PublishPost transitions a post to the published state.
func (s *PostService) PublishPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	post.PublishNow()
	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPublishedPage returns one page of published posts, newest publish
// date first. rawPage comes straight from the query string; bad values
// degrade per the pagination rules instead of failing.
func (s *PostService) ListPublishedPage(rawPage string) (pagination.Page[*models.Post], error) {
	posts, err := s.postRepo.ListPublished()
	if err != nil {
		return pagination.Page[*models.Post]{}, err
	}
	return pagination.Paginate(posts, s.pageSize, rawPage), nil
}

// RecentPublished returns up to n of the newest published posts.
func (s *PostService) RecentPublished(n int) ([]*models.Post, error) {
	posts, err := s.postRepo.ListPublished()
	if err != nil {
		return nil, err
	}
	if len(posts) > n {
		posts = posts[:n]
	}
	return posts, nil
}

// GetPublished retrieves a published post by ID. Drafts behave as if
// they do not exist.
func (s *PostService) GetPublished(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished() {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

// GetPublishedByDateSlug resolves a post through its canonical URL
// parts: the calendar date the post was published on plus its slug.
func (s *PostService) GetPublishedByDateSlug(year, month, day int, slug string) (*models.Post, error) {
	posts, err := s.postRepo.ListPublished()
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		if post.Slug == slug && post.PublishedOn(year, month, day) {
			return post, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// DeletePost deletes a post and all its comments.
func (s *PostService) DeletePost(id int) error {
	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return fmt.Errorf("failed to get comments: %w", err)
	}
	for _, comment := range comments {
		if err := s.commentRepo.Delete(comment.ID); err != nil {
			return fmt.Errorf("failed to delete comment %d: %w", comment.ID, err)
		}
	}
	return s.postRepo.Delete(id)
}
