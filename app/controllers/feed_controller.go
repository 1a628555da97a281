package controllers

import (
	"net/http"

	"inkwell/app/config"
	"inkwell/app/feed"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
)

// FeedController serves the RSS feed of recent published posts.
type FeedController struct {
	postService *services.PostService
	cfg         *config.Config
}

// NewFeedController creates a FeedController wired to the given DB.
func NewFeedController(db *badger.DB, cfg *config.Config) *FeedController {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	return &FeedController{
		postService: services.NewPostService(postRepo, commentRepo, cfg.PageSize),
		cfg:         cfg,
	}
}

// Show writes the feed document for the newest published posts.
func (fc *FeedController) Show(w http.ResponseWriter, r *http.Request) {
	posts, err := fc.postService.RecentPublished(fc.cfg.FeedItems)
	if err != nil {
		sendError(w, err, "Failed to build feed")
		return
	}

	doc := feed.Build(fc.cfg.FeedTitle, fc.cfg.BaseURL, fc.cfg.FeedDescription, posts)
	out, err := doc.Encode()
	if err != nil {
		sendError(w, err, "Failed to encode feed")
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Write(out)
}
