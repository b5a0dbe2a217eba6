package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nightrelay/dark-ai/backend/internal/model/user"
	userService "github.com/nightrelay/dark-ai/backend/internal/service/user"
	"github.com/nightrelay/dark-ai/backend/pkg/utils"
)

// Handler 用户资料的HTTP处理器
type Handler struct {
	userSvc *userService.Service
}

// New 创建用户处理器
func New(userSvc *userService.Service) *Handler {
	return &Handler{userSvc: userSvc}
}

// RegisterRoutes 注册用户相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/user/profile", h.handleProfile)
	r.Post("/user/upgrade", h.handleUpgrade)
}

// handleProfile 查询（必要时惰性创建）用户资料。
func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = user.AnonymousID
	}

	profile := h.userSvc.Get(r.Context(), userID)
	utils.RespondJSON(w, http.StatusOK, profile)
}

// handleUpgrade 将用户升级为 premium，重复调用保持幂等。
func (h *Handler) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"user_id"`
	}
	// Body is optional; an absent or malformed body means the anonymous user.
	_ = json.NewDecoder(r.Body).Decode(&payload)

	userID := payload.UserID
	if userID == "" {
		userID = user.AnonymousID
	}

	h.userSvc.Upgrade(r.Context(), userID)

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"premium": true,
		"message": "Account upgraded to premium successfully",
	})
}
