package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nightrelay/dark-ai/backend/internal/service/ai"
	chatService "github.com/nightrelay/dark-ai/backend/internal/service/chat"
	userService "github.com/nightrelay/dark-ai/backend/internal/service/user"
	"github.com/nightrelay/dark-ai/backend/pkg/utils"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Handler 健康检查的HTTP处理器
type Handler struct {
	assistant *ai.Assistant
	chatSvc   *chatService.Service
	userSvc   *userService.Service
}

// New 创建健康检查处理器
func New(assistant *ai.Assistant, chatSvc *chatService.Service, userSvc *userService.Service) *Handler {
	return &Handler{
		assistant: assistant,
		chatSvc:   chatSvc,
		userSvc:   userSvc,
	}
}

// RegisterRoutes 注册健康检查路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.handleHealth)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":           "healthy",
		"timestamp":        time.Now().UTC(),
		"version":          Version,
		"gemini_available": h.assistant.Available(),
		"active_chats":     h.chatSvc.Count(ctx),
		"active_users":     h.userSvc.Count(ctx),
	})
}
