package routes

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"inkwell/app/config"
	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// recorderMailer captures outbound mail instead of sending it.
type recorderMailer struct {
	subjects []string
	bodies   []string
	to       [][]string
}

func (r *recorderMailer) Send(subject, body string, to []string) error {
	r.subjects = append(r.subjects, subject)
	r.bodies = append(r.bodies, body)
	r.to = append(r.to, to)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Addr:            ":0",
		BaseURL:         "http://example.com",
		PageSize:        3,
		FeedTitle:       "Place of Blogs",
		FeedDescription: "New blog posts.",
		FeedItems:       5,
	}
}

func setupTestTemplates(t *testing.T) string {
	tmpDir := t.TempDir()
	viewsDir := filepath.Join(tmpDir, "app", "views")

	dirs := []string{
		filepath.Join(viewsDir, "posts"),
		filepath.Join(viewsDir, "shared"),
	}
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	templates := map[string]string{
		filepath.Join(viewsDir, "layout.html"): `{{define "layout"}}<!DOCTYPE html><html><body>{{template "content" .}}</body></html>{{end}}`,
		filepath.Join(viewsDir, "posts/index.html"): `{{define "content"}}<div class="posts">{{range .Page.Items}}<h2>{{.Title}}</h2>{{end}}</div>` +
			`<nav>Page {{.Page.Number}} of {{.Page.TotalPages}}</nav>{{end}}`,
		filepath.Join(viewsDir, "posts/detail.html"): `{{define "content"}}<h1>{{.Post.Title}}</h1><div>{{.BodyHTML}}</div>{{template "comments" .}}<form method="POST"></form>{{end}}`,
		filepath.Join(viewsDir, "posts/share.html"): `{{define "content"}}{{if .Sent}}sent to {{.Form.To}}{{else}}<form method="POST">` +
			`{{range $f, $e := .Errors}}<p class="error">{{$f}}: {{$e}}</p>{{end}}</form>{{end}}{{end}}`,
		filepath.Join(viewsDir, "posts/comment.html"): `{{define "content"}}{{if .Comment}}<div class="comment">{{.Comment.Body}}</div>{{else}}` +
			`{{range $f, $e := .Errors}}<p class="error">{{$f}}: {{$e}}</p>{{end}}{{end}}{{end}}`,
		filepath.Join(viewsDir, "shared/comments.html"): `{{define "comments"}}<section class="comments">{{range .Comments}}<p>{{.Body}}</p>{{end}}</section>{{end}}`,
	}
	for path, content := range templates {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return tmpDir
}

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T, db *badger.DB) (*mux.Router, *recorderMailer) {
	basePath := setupTestTemplates(t)
	mailer := &recorderMailer{}
	router := SetupRoutes(db, testConfig(), mailer, basePath)
	return router, mailer
}

func createPublishedPost(t *testing.T, db *badger.DB, title string, publish time.Time) *models.Post {
	repo := repositories.NewBadgerPostRepository(db)
	post := &models.Post{
		Title:   title,
		Body:    "Body of " + title,
		Publish: publish,
		Status:  models.StatusPublished,
	}
	post.BeforeCreate()
	require.NoError(t, repo.Create(post))
	return post
}

func createDraftPost(t *testing.T, db *badger.DB, title string) *models.Post {
	repo := repositories.NewBadgerPostRepository(db)
	post := &models.Post{
		Title:  title,
		Body:   "Body of " + title,
		Status: models.StatusDraft,
	}
	post.BeforeCreate()
	require.NoError(t, repo.Create(post))
	return post
}
