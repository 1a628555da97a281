package routes

import (
	"net/http"
	"path/filepath"

	"inkwell/app/config"
	"inkwell/app/controllers"
	"inkwell/app/mail"
	"inkwell/app/middleware"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router.
// basePath anchors template and static lookups; "" means the working
// directory.
func SetupRoutes(db *badger.DB, cfg *config.Config, mailer mail.Mailer, basePath string) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	postController := controllers.NewPostController(db, cfg, mailer, basePath)
	commentController := controllers.NewCommentController(db, cfg, basePath)
	feedController := controllers.NewFeedController(db, cfg)

	// Serve static files
	staticDir := filepath.Join(basePath, "static")
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	router.HandleFunc("/", postController.Index).Methods("GET")
	router.HandleFunc("/feed/", feedController.Show).Methods("GET")

	// The comment route is write-only; mux answers 405 for anything else.
	router.HandleFunc("/{id:[0-9]+}/comment/", commentController.Create).Methods("POST")
	router.HandleFunc("/{id:[0-9]+}/share/", postController.Share).Methods("GET", "POST")

	// Canonical date-partitioned post URL.
	router.HandleFunc("/{year:[0-9]{4}}/{month:[0-9]{1,2}}/{day:[0-9]{1,2}}/{slug}/", postController.Show).Methods("GET")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
