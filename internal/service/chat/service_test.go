package chat_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	model "github.com/nightrelay/dark-ai/backend/internal/model/chat"
	chat "github.com/nightrelay/dark-ai/backend/internal/service/chat"
)

func TestAppendCreatesSession(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	svc.Append(ctx, "chat-1", "alice", model.RoleUser, "hello")

	messages, err := svc.History(ctx, "chat-1")
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].Role != model.RoleUser || messages[0].Content != "hello" {
		t.Fatalf("unexpected message: %+v", messages[0])
	}
	if svc.Count(ctx) != 1 {
		t.Fatalf("expected 1 session, got %d", svc.Count(ctx))
	}
}

func TestHistoryCap(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		svc.Append(ctx, "chat-1", "alice", model.RoleUser, fmt.Sprintf("msg-%d", i))
	}

	messages, err := svc.History(ctx, "chat-1")
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(messages) != 50 {
		t.Fatalf("expected 50 messages after cap, got %d", len(messages))
	}
	if messages[0].Content != "msg-10" {
		t.Fatalf("expected oldest surviving message msg-10, got %s", messages[0].Content)
	}
	if messages[49].Content != "msg-59" {
		t.Fatalf("expected newest message msg-59, got %s", messages[49].Content)
	}
}

func TestHistoryNotFound(t *testing.T) {
	svc := chat.NewService()

	if _, err := svc.History(context.Background(), "missing"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteSession(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	svc.Append(ctx, "chat-1", "alice", model.RoleUser, "hello")

	if err := svc.Delete(ctx, "chat-1"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if _, err := svc.History(ctx, "chat-1"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected history gone after delete, got %v", err)
	}
	if svc.Count(ctx) != 0 {
		t.Fatalf("expected 0 sessions, got %d", svc.Count(ctx))
	}
}

func TestDeleteUnknownSession(t *testing.T) {
	svc := chat.NewService()

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
