package services

import (
	"sort"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

type mockPostRepo struct {
	posts  map[int]*models.Post
	nextID int
}

type mockCommentRepo struct {
	comments map[int]*models.Comment
	nextID   int
}

type mockUserRepo struct {
	users  map[int]*models.User
	nextID int
}

// recorderMailer captures outbound mail instead of sending it.
type recorderMailer struct {
	subjects []string
	bodies   []string
	to       [][]string
	err      error
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[int]*models.Post), nextID: 1}
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{comments: make(map[int]*models.Comment), nextID: 1}
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]*models.User), nextID: 1}
}

// PostRepository implementation

func (m *mockPostRepo) Create(post *models.Post) error {
	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(id int) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *mockPostRepo) Update(post *models.Post) error {
	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) Delete(id int) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) ListAll() ([]*models.Post, error) {
	return m.list(func(*models.Post) bool { return true }), nil
}

func (m *mockPostRepo) ListPublished() ([]*models.Post, error) {
	return m.list(func(p *models.Post) bool { return p.IsPublished() }), nil
}

func (m *mockPostRepo) ListByAuthor(authorID int) ([]*models.Post, error) {
	return m.list(func(p *models.Post) bool { return p.AuthorID == authorID }), nil
}

func (m *mockPostRepo) list(keep func(*models.Post) bool) []*models.Post {
	var posts []*models.Post
	for _, post := range m.posts {
		if keep(post) {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Publish.Equal(posts[j].Publish) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].Publish.After(posts[j].Publish)
	})
	return posts
}

// CommentRepository implementation

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	comment.BeforeCreate()
	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepo) GetByID(id int) (*models.Comment, error) {
	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return comment, nil
}

func (m *mockCommentRepo) Update(comment *models.Comment) error {
	if _, exists := m.comments[comment.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockCommentRepo) Delete(id int) error {
	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *mockCommentRepo) ListByPost(postID int) ([]*models.Comment, error) {
	return m.list(func(c *models.Comment) bool { return c.PostID == postID }), nil
}

func (m *mockCommentRepo) ListActiveByPost(postID int) ([]*models.Comment, error) {
	return m.list(func(c *models.Comment) bool { return c.PostID == postID && c.Active }), nil
}

func (m *mockCommentRepo) list(keep func(*models.Comment) bool) []*models.Comment {
	var comments []*models.Comment
	for _, comment := range m.comments {
		if keep(comment) {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments
}

// UserRepository implementation

func (m *mockUserRepo) Create(user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepo) Delete(id int) error {
	if _, exists := m.users[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// Mailer implementation

func (r *recorderMailer) Send(subject, body string, to []string) error {
	if r.err != nil {
		return r.err
	}
	r.subjects = append(r.subjects, subject)
	r.bodies = append(r.bodies, body)
	r.to = append(r.to, to)
	return nil
}

func publishedAt(title string, publish time.Time) *models.Post {
	return &models.Post{
		Title:   title,
		Slug:    models.Slugify(title),
		Body:    "Body of " + title,
		Publish: publish,
		Status:  models.StatusPublished,
	}
}
