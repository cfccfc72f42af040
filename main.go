package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/plumeworks/plume-backend/internal/auth"
	"github.com/plumeworks/plume-backend/internal/config"
	"github.com/plumeworks/plume-backend/internal/db"
	"github.com/plumeworks/plume-backend/internal/logger"
	"github.com/plumeworks/plume-backend/internal/session"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if user, ok := auth.CurrentUser(r.Context()); ok {
		fmt.Fprintf(w, "Welcome back, %s!\n", user.Username)
		return
	}
	fmt.Fprintln(w, "Welcome! Log in at /auth/login.")
}

func HelloHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Hello, World!")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	slogger := logger.New(cfg.LogLevel)

	pool, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer pool.Close()

	codec := session.NewCodec(cfg.SecretKey)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(db.Middleware(pool))
	r.Use(auth.Hydrate(codec))

	r.Get("/", RootHandler)
	r.Get("/hello", HelloHandler)
	r.Mount("/auth", auth.SetupRoutes(codec))

	slogger.Info("server listening", "addr", cfg.Addr, "database", cfg.DatabasePath)

	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
