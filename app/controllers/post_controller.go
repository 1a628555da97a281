package controllers

import (
	"html/template"
	"net/http"
	"strconv"

	"inkwell/app/config"
	"inkwell/app/mail"
	"inkwell/app/markup"
	"inkwell/app/models"
	"inkwell/app/pagination"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// PostController handles the reader-facing post pages: the paginated
// list, the canonical detail page, and the share-by-email flow.
type PostController struct {
	postService    *services.PostService
	commentService *services.CommentService
	shareService   *services.ShareService
	templates      map[string]*template.Template
}

// NewPostController creates a PostController wired to the given DB.
func NewPostController(db *badger.DB, cfg *config.Config, mailer mail.Mailer, basePath string) *PostController {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	return &PostController{
		postService:    services.NewPostService(postRepo, commentRepo, cfg.PageSize),
		commentService: services.NewCommentService(commentRepo, postRepo),
		shareService:   services.NewShareService(mailer, cfg.BaseURL),
		templates:      loadTemplates(basePath),
	}
}

// Index lists published posts three to a page. A bad ?page= value never
// errors; it degrades per the pagination rules.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page, err := pc.postService.ListPublishedPage(r.URL.Query().Get("page"))
	if err != nil {
		sendError(w, err, "Failed to fetch posts")
		return
	}

	data := struct {
		Page pagination.Page[*models.Post]
	}{
		Page: page,
	}
	render(w, pc.templates["index"], data)
}

// Show resolves a post through its canonical date-partitioned URL and
// renders it with its active comments and a blank comment form.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, _ := strconv.Atoi(vars["year"])
	month, _ := strconv.Atoi(vars["month"])
	day, _ := strconv.Atoi(vars["day"])

	post, err := pc.postService.GetPublishedByDateSlug(year, month, day, vars["slug"])
	if err != nil {
		sendError(w, err, "Failed to fetch post")
		return
	}

	comments, err := pc.commentService.ListActiveComments(post.ID)
	if err != nil {
		sendError(w, err, "Failed to fetch comments")
		return
	}

	data := struct {
		Post     *models.Post
		BodyHTML template.HTML
		Comments []*models.Comment
		Form     *models.CommentForm
		Errors   models.FieldErrors
	}{
		Post:     post,
		BodyHTML: template.HTML(markup.Render(post.Body)),
		Comments: comments,
		Form:     &models.CommentForm{},
		Errors:   models.FieldErrors{},
	}
	render(w, pc.templates["detail"], data)
}

// Share renders the share-by-email form on GET and processes it on POST.
// Validation problems re-render the form; only a fully valid submission
// dispatches mail.
func (pc *PostController) Share(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := pc.postService.GetPublished(id)
	if err != nil {
		sendError(w, err, "Failed to fetch post")
		return
	}

	form := &models.EmailPostForm{}
	errs := models.FieldErrors{}
	sent := false

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}
		form.Name = r.FormValue("name")
		form.Email = r.FormValue("email")
		form.To = r.FormValue("to")
		form.Comments = r.FormValue("comments")

		sent, errs, err = pc.shareService.SharePost(post, form)
		if err != nil {
			sendError(w, err, "Failed to send email")
			return
		}
	}

	data := struct {
		Post   *models.Post
		Form   *models.EmailPostForm
		Errors models.FieldErrors
		Sent   bool
	}{
		Post:   post,
		Form:   form,
		Errors: errs,
		Sent:   sent,
	}
	render(w, pc.templates["share"], data)
}
