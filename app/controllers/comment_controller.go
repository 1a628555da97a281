package controllers

import (
	"html/template"
	"net/http"
	"strconv"

	"inkwell/app/config"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// CommentController handles comment submission. The route is registered
// POST-only; reading comments happens on the post detail page.
type CommentController struct {
	postService    *services.PostService
	commentService *services.CommentService
	templates      map[string]*template.Template
}

// NewCommentController creates a CommentController wired to the given DB.
func NewCommentController(db *badger.DB, cfg *config.Config, basePath string) *CommentController {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	return &CommentController{
		postService:    services.NewPostService(postRepo, commentRepo, cfg.PageSize),
		commentService: services.NewCommentService(commentRepo, postRepo),
		templates:      loadTemplates(basePath),
	}
}

// Create validates and persists a comment against a published post, then
// renders a confirmation. Invalid fields re-render with inline errors
// and nothing is stored.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := cc.postService.GetPublished(id)
	if err != nil {
		sendError(w, err, "Failed to fetch post")
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}
	form := &models.CommentForm{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Body:  r.FormValue("body"),
	}

	comment, errs, err := cc.commentService.CreateComment(post, form)
	if err != nil {
		sendError(w, err, "Failed to create comment")
		return
	}

	data := struct {
		Post    *models.Post
		Comment *models.Comment
		Form    *models.CommentForm
		Errors  models.FieldErrors
	}{
		Post:    post,
		Comment: comment,
		Form:    form,
		Errors:  errs,
	}
	render(w, cc.templates["comment"], data)
}
