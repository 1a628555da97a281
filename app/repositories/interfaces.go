package repositories

import "inkwell/app/models"

// PostRepository defines the interface for post data access. Both list
// views return posts ordered by publish date, newest first; ListPublished
// is the view every public-facing path goes through.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	ListAll() ([]*models.Post, error)
	ListPublished() ([]*models.Post, error)
	ListByAuthor(authorID int) ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access.
// Comments are ordered oldest first within a post.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByPost(postID int) ([]*models.Comment, error)
	ListActiveByPost(postID int) ([]*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id int) error
}

// UserRepository defines the interface for author data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Delete(id int) error
}
