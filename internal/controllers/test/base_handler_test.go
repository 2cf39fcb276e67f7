package controllers_test

import (
	"context"
	"testing"
	"time"

	"github.com/deepencoding/yt-clone-catalog/internal/controllers"
	"github.com/deepencoding/yt-clone-catalog/internal/infrastructure/configloader"

	kmetadata "github.com/go-kratos/kratos/v2/metadata"
)

func TestExtractMetadata_TrustedHeaders(t *testing.T) {
	h := controllers.NewBaseHandler(controllers.HandlerTimeouts{})

	md := kmetadata.New()
	md.Set("x-md-global-user-id", "u123")
	md.Set("x-md-idempotency-key", "idem-1")
	ctx := kmetadata.NewServerContext(context.Background(), md)

	meta := h.ExtractMetadata(ctx)
	if meta.UserID != "u123" {
		t.Fatalf("unexpected user id: %q", meta.UserID)
	}
	if meta.IdempotencyKey != "idem-1" {
		t.Fatalf("unexpected idempotency key: %q", meta.IdempotencyKey)
	}
	if !meta.Authenticated() {
		t.Fatal("expected authenticated metadata")
	}
}

func TestExtractMetadata_NoMetadata(t *testing.T) {
	h := controllers.NewBaseHandler(controllers.HandlerTimeouts{})

	meta := h.ExtractMetadata(context.Background())
	if !meta.IsZero() {
		t.Fatalf("expected zero metadata, got %+v", meta)
	}
	if meta.Authenticated() {
		t.Fatal("missing identity must not authenticate")
	}
}

func TestWithTimeout_FallbackDefaults(t *testing.T) {
	h := controllers.NewBaseHandler(controllers.HandlerTimeouts{})

	ctx, cancel := h.WithTimeout(context.Background(), controllers.HandlerTypeQuery)
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected deadline")
	}
	remaining := time.Until(deadline)
	if remaining <= 0 || remaining > 3*time.Second {
		t.Fatalf("query timeout outside fallback window: %s", remaining)
	}
}

func TestProvideHandlerTimeouts_FromServerConfig(t *testing.T) {
	timeouts := controllers.ProvideHandlerTimeouts(configloader.ServerConfig{Timeout: 7 * time.Second})
	if timeouts.Default != 7*time.Second || timeouts.Command != 7*time.Second {
		t.Fatalf("unexpected timeouts: %+v", timeouts)
	}
}
