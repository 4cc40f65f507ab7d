// Package router assembles the HTTP routes of the API server.
package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"bookshelf/internal/http/handler"
	"bookshelf/internal/http/handler/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Options struct {
	// AllowedOrigin is the single browser origin allowed to call the API with credentials.
	AllowedOrigin string
	// StaticDir, when set, is served for every other GET path with an index.html fallback.
	StaticDir string
}

func New(logger *zap.SugaredLogger, opts Options, gql *handler.GraphQLHandler, authMw *middleware.AuthMiddleware) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(logger).Logging)
	r.Use(middleware.NewRecovererMiddleware(logger).Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get(handler.Health, gql.HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(authMw.Authenticate)
		r.Post(handler.GraphQL, gql.HandleGraphQL)
	})

	if opts.StaticDir != "" {
		r.Get("/*", spaHandler(opts.StaticDir))
	}

	return r
}

// spaHandler serves files from dir and falls back to index.html so client side
// routes resolve.
func spaHandler(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if !strings.HasPrefix(path, filepath.Clean(dir)) {
			http.NotFound(w, r)
			return
		}

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}
