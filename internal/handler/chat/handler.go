package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nightrelay/dark-ai/backend/internal/model/chat"
	"github.com/nightrelay/dark-ai/backend/internal/model/user"
	"github.com/nightrelay/dark-ai/backend/internal/service/ai"
	chatService "github.com/nightrelay/dark-ai/backend/internal/service/chat"
	userService "github.com/nightrelay/dark-ai/backend/internal/service/user"
	"github.com/nightrelay/dark-ai/backend/pkg/utils"
)

// assistantHistoryLimit bounds how much history is handed to the assistant.
const assistantHistoryLimit = 10

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc   *chatService.Service
	userSvc   *userService.Service
	assistant *ai.Assistant
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service, userSvc *userService.Service, assistant *ai.Assistant) *Handler {
	return &Handler{
		chatSvc:   chatSvc,
		userSvc:   userSvc,
		assistant: assistant,
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/chat/{chatID}", h.handleHistory)
	r.Delete("/chat/{chatID}", h.handleDelete)
}

// handleChat 处理一轮对话：记录用户消息、生成回复、记录回复。
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
		ChatID  string `json:"chat_id"`
		UserID  string `json:"user_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Message == "" {
		utils.RespondError(w, http.StatusBadRequest, "Message is required")
		return
	}

	chatID := payload.ChatID
	if chatID == "" {
		chatID = "default"
	}
	userID := payload.UserID
	if userID == "" {
		userID = user.AnonymousID
	}

	log.Printf("[chat] received message from user %s in chat %s", userID, chatID)

	ctx := r.Context()
	h.chatSvc.Append(ctx, chatID, userID, chat.RoleUser, payload.Message)

	history, err := h.chatSvc.History(ctx, chatID)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(history) > assistantHistoryLimit {
		history = history[len(history)-assistantHistoryLimit:]
	}

	userCtx := ai.UserContext{Premium: h.userSvc.IsPremium(ctx, userID)}
	if userID != user.AnonymousID {
		userCtx.Name = userID
	}

	response := h.assistant.Respond(ctx, payload.Message, history, userCtx)
	h.chatSvc.Append(ctx, chatID, userID, chat.RoleAssistant, response)

	log.Printf("[chat] generated response for user %s (%d chars)", userID, len(response))

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"response":  response,
		"chat_id":   chatID,
		"timestamp": time.Now().UTC(),
	})
}

// handleHistory 返回指定会话的消息记录。
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	messages, err := h.chatSvc.History(r.Context(), chatID)
	if err != nil {
		if errors.Is(err, chatService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Chat session not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"chat_id":  chatID,
		"messages": messages,
	})
}

// handleDelete 删除指定会话。
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	if err := h.chatSvc.Delete(r.Context(), chatID); err != nil {
		if errors.Is(err, chatService.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Chat session not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Chat session deleted successfully",
	})
}
