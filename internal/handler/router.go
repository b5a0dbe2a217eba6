package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nightrelay/dark-ai/backend/internal/config"
	chatHandler "github.com/nightrelay/dark-ai/backend/internal/handler/chat"
	healthHandler "github.com/nightrelay/dark-ai/backend/internal/handler/health"
	userHandler "github.com/nightrelay/dark-ai/backend/internal/handler/user"
	middlewarePkg "github.com/nightrelay/dark-ai/backend/internal/middleware"
	"github.com/nightrelay/dark-ai/backend/internal/service/ai"
	chatService "github.com/nightrelay/dark-ai/backend/internal/service/chat"
	userService "github.com/nightrelay/dark-ai/backend/internal/service/user"
	"github.com/nightrelay/dark-ai/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cfg config.ServerConfig, assistant *ai.Assistant, chatSvc *chatService.Service, userSvc *userService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if cfg.Debug {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	// Create handlers
	chatH := chatHandler.New(chatSvc, userSvc, assistant)
	userH := userHandler.New(userSvc)
	healthH := healthHandler.New(assistant, chatSvc, userSvc)

	r.Route("/api", func(api chi.Router) {
		chatH.RegisterRoutes(api)
		userH.RegisterRoutes(api)
		healthH.RegisterRoutes(api)
	})

	// Serve the front-end assets
	r.Get("/", serveIndex(cfg.StaticDir))
	r.Get("/*", serveStatic(cfg.StaticDir))

	return r
}

// serveIndex 返回首页。
func serveIndex(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	}
}

// serveStatic 返回匹配的静态资源，缺失时返回 404。
func serveStatic(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Clean the wildcard path so "../" cannot escape the asset root.
		rel := filepath.Clean("/" + chi.URLParam(r, "*"))
		path := filepath.Join(staticDir, rel)

		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			utils.RespondError(w, http.StatusNotFound, "not found")
			return
		}

		http.ServeFile(w, r, path)
	}
}
