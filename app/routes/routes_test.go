package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"inkwell/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostListRoutes(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupTestRouter(t, db)

	base := time.Date(2025, time.February, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		createPublishedPost(t, db, fmt.Sprintf("Listed Post %d", i+1), base.AddDate(0, 0, i))
	}
	createDraftPost(t, db, "Unlisted Draft")

	t.Run("GET / returns the first page of published posts", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Listed Post 4")
		assert.Contains(t, body, "Page 1 of 2")
		assert.NotContains(t, body, "Unlisted Draft")
	})

	t.Run("GET /?page=2 returns the second page", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?page=2", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Listed Post 1")
	})

	t.Run("garbage page parameter degrades to page 1", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?page=abc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Page 1 of 2")
	})

	t.Run("out-of-range page degrades to the last page", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?page=99", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Page 2 of 2")
	})
}

func TestPostDetailRoutes(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupTestRouter(t, db)

	publish := time.Date(2025, time.March, 7, 16, 0, 0, 0, time.UTC)
	post := createPublishedPost(t, db, "Detailed Post", publish)

	commentRepo := repositories.NewBadgerCommentRepository(db)
	comments, err := commentRepo.ListByPost(post.ID)
	require.NoError(t, err)
	require.Empty(t, comments)

	t.Run("canonical URL resolves", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/2025/3/7/detailed-post/", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Detailed Post")
	})

	t.Run("wrong slug is 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/2025/3/7/wrong-slug/", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("wrong date is 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/2025/3/8/detailed-post/", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("draft is 404 even at its canonical URL", func(t *testing.T) {
		draft := createDraftPost(t, db, "Sneaky Draft")
		y, m, d := draft.Publish.Date()

		req := httptest.NewRequest("GET", fmt.Sprintf("/%d/%d/%d/sneaky-draft/", y, int(m), d), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentRoutes(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupTestRouter(t, db)

	post := createPublishedPost(t, db, "Commented Post", time.Now())
	commentRepo := repositories.NewBadgerCommentRepository(db)

	postComment := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", fmt.Sprintf("/%d/comment/", post.ID), strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("GET is method not allowed", func(t *testing.T) {
		req := httptest.NewRequest("GET", fmt.Sprintf("/%d/comment/", post.ID), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("valid comment is persisted and rendered", func(t *testing.T) {
		w := postComment(url.Values{
			"name":  {"Ana"},
			"email": {"a@x.com"},
			"body":  {"Nice post"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Nice post")
		assert.NotContains(t, w.Body.String(), "error")

		stored, err := commentRepo.ListActiveByPost(post.ID)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "Ana", stored[0].Name)
	})

	t.Run("empty body re-renders with errors and persists nothing", func(t *testing.T) {
		w := postComment(url.Values{
			"name":  {"Ana"},
			"email": {"a@x.com"},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "error")
		assert.Contains(t, w.Body.String(), "body")

		stored, err := commentRepo.ListByPost(post.ID)
		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("comment on a draft is 404", func(t *testing.T) {
		draft := createDraftPost(t, db, "No Comments Here")

		req := httptest.NewRequest("POST", fmt.Sprintf("/%d/comment/", draft.ID),
			strings.NewReader("name=Ana&email=a%40x.com&body=hi"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("comment on a missing post is 404", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/999/comment/", strings.NewReader("name=Ana&email=a%40x.com&body=hi"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestShareRoutes(t *testing.T) {
	db := setupTestDB(t)
	router, mailer := setupTestRouter(t, db)

	post := createPublishedPost(t, db, "Shared Post", time.Date(2025, time.July, 4, 12, 0, 0, 0, time.UTC))

	t.Run("GET renders the empty form", func(t *testing.T) {
		req := httptest.NewRequest("GET", fmt.Sprintf("/%d/share/", post.ID), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "form")
		assert.Empty(t, mailer.subjects)
	})

	t.Run("valid submission sends mail and reports sent", func(t *testing.T) {
		form := url.Values{
			"name":     {"Ana"},
			"email":    {"a@x.com"},
			"to":       {"friend@example.com"},
			"comments": {"Have a look"},
		}
		req := httptest.NewRequest("POST", fmt.Sprintf("/%d/share/", post.ID), strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "sent to friend@example.com")
		require.Len(t, mailer.subjects, 1)
		assert.Contains(t, mailer.bodies[0], "http://example.com/2025/7/4/shared-post/")
	})

	t.Run("invalid recipient re-renders with errors and sends nothing", func(t *testing.T) {
		before := len(mailer.subjects)

		form := url.Values{
			"name":  {"Ana"},
			"email": {"a@x.com"},
			"to":    {"not-an-email"},
		}
		req := httptest.NewRequest("POST", fmt.Sprintf("/%d/share/", post.ID), strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "error")
		assert.NotContains(t, w.Body.String(), "sent to")
		assert.Len(t, mailer.subjects, before)
	})

	t.Run("share of a missing post is 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/999/share/", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFeedRoute(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupTestRouter(t, db)

	base := time.Date(2025, time.May, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		createPublishedPost(t, db, fmt.Sprintf("Feed Post %d", i+1), base.AddDate(0, 0, i))
	}
	createDraftPost(t, db, "Feed Draft")

	req := httptest.NewRequest("GET", "/feed/", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "rss+xml")

	body := w.Body.String()
	assert.Contains(t, body, `<rss version="2.0">`)
	assert.Contains(t, body, "<title>Place of Blogs</title>")

	// Only the five most recent published posts make the feed.
	assert.Equal(t, 5, strings.Count(body, "<item>"))
	assert.Contains(t, body, "Feed Post 7")
	assert.Contains(t, body, "Feed Post 3")
	assert.NotContains(t, body, "Feed Post 2")
	assert.NotContains(t, body, "Feed Draft")
}
