package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"inkwell/app/config"
	"inkwell/app/mail"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const cliVersion = "1.0.0"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	case "seed":
		seed()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>
Commands:
  help      Display this help message.
  version   Show version information.
  serve     Run the blog web application.
  seed      Create a demo author and a few published posts.

Configuration comes from the environment (see app/config).
`
	fmt.Println(helpText)
}

func openDB(cfg *config.Config) *badger.DB {
	opts := badger.DefaultOptions(cfg.DBPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	return db
}

func newMailer(cfg *config.Config) mail.Mailer {
	if cfg.SMTPAddr == "" {
		log.Info().Msg("no SMTP relay configured; logging outbound mail")
		return mail.LogMailer{}
	}
	return mail.NewSMTPMailer(cfg.SMTPAddr, cfg.MailFrom)
}

// serve runs the blog until the process is stopped.
func serve() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db := openDB(cfg)
	defer db.Close()

	router := routes.SetupRoutes(db, cfg, newMailer(cfg), "")

	log.Info().Str("addr", cfg.Addr).Str("base_url", cfg.BaseURL).Msg("starting blog")
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// seed populates an empty database with a demo author and posts so the
// list, detail, and feed pages have something to show.
func seed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db := openDB(cfg)
	defer db.Close()

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	userService := services.NewUserService(userRepo, postRepo, commentRepo)
	postService := services.NewPostService(postRepo, commentRepo, cfg.PageSize)

	author, err := userService.CreateUser("demo", "demo@example.com", "demo-password")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create demo author")
	}

	titles := []string{
		"Welcome to the blog",
		"Second thoughts",
		"Notes from the road",
		"On writing less",
	}
	for i, title := range titles {
		post := &models.Post{
			Title:    title,
			AuthorID: author.ID,
			Body:     fmt.Sprintf("This is *%s*, seeded for demonstration.", title),
			Publish:  time.Now().AddDate(0, 0, -i),
		}
		if err := postService.CreatePost(post); err != nil {
			log.Fatal().Err(err).Str("title", title).Msg("failed to seed post")
		}
		if _, err := postService.PublishPost(post.ID); err != nil {
			log.Fatal().Err(err).Str("title", title).Msg("failed to publish post")
		}
		log.Info().Str("title", title).Str("path", post.CanonicalPath()).Msg("seeded post")
	}
}
