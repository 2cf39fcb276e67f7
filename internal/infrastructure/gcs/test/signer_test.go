package gcs_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	gcs "github.com/deepencoding/yt-clone-catalog/internal/infrastructure/gcs"
	"github.com/go-kratos/kratos/v2/log"
)

func TestSignedUploadURL(t *testing.T) {
	ctx := context.Background()
	keyPEM, accessID := generateTestKey(t)
	fixed := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	signer, err := gcs.NewUploadSigner(ctx, accessID, log.NewStdLogger(io.Discard),
		gcs.WithServiceAccountKey(accessID, keyPEM),
		gcs.WithClock(func() time.Time { return fixed }),
	)
	if err != nil {
		t.Fatalf("NewUploadSigner: %v", err)
	}

	ttl := 15 * time.Minute
	signedURL, expires, err := signer.SignedUploadURL(ctx, "yt-raw-videos-deepencoding-clone", "u123-1700000000000.mp4", ttl)
	if err != nil {
		t.Fatalf("SignedUploadURL: %v", err)
	}
	if !expires.Equal(fixed.Add(ttl)) {
		t.Fatalf("expected expires %v, got %v", fixed.Add(ttl), expires)
	}

	parsed, err := url.Parse(signedURL)
	if err != nil {
		t.Fatalf("parse signed url: %v", err)
	}
	if parsed.Host == "" {
		t.Fatal("expected host in signed url")
	}
	if !strings.Contains(parsed.Path, "u123-1700000000000.mp4") {
		t.Fatalf("expected object path in signed url, got %s", parsed.Path)
	}

	query := parsed.Query()
	// 15 minutes on the wire, in seconds.
	if query.Get("X-Goog-Expires") != "900" {
		t.Fatalf("unexpected TTL in signed url: %s", query.Get("X-Goog-Expires"))
	}
	if query.Get("X-Goog-Signature") == "" {
		t.Fatal("missing signature in signed url")
	}
	// Write-only scope: nothing beyond the host is signed, the credential is
	// bound to the PUT method and this exact object key.
	headers := strings.ToLower(query.Get("X-Goog-SignedHeaders"))
	if !strings.Contains(headers, "host") {
		t.Fatalf("expected host in signed headers: %s", headers)
	}
}

func TestSignedUploadURLValidation(t *testing.T) {
	ctx := context.Background()
	keyPEM, accessID := generateTestKey(t)
	signer, err := gcs.NewUploadSigner(ctx, accessID, log.NewStdLogger(io.Discard),
		gcs.WithServiceAccountKey(accessID, keyPEM),
	)
	if err != nil {
		t.Fatalf("NewUploadSigner: %v", err)
	}

	if _, _, err := signer.SignedUploadURL(ctx, "", "object", time.Minute); err == nil {
		t.Fatal("expected error for empty bucket")
	}
	if _, _, err := signer.SignedUploadURL(ctx, "bucket", "", time.Minute); err == nil {
		t.Fatal("expected error for empty object")
	}
	if _, _, err := signer.SignedUploadURL(ctx, "bucket", "object", 0); err == nil {
		t.Fatal("expected error for non-positive ttl")
	}
}

func generateTestKey(t *testing.T) ([]byte, string) {
	t.Helper()
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	pkcs8, err := x509.MarshalPKCS8PrivateKey(rsaKey)
	if err != nil {
		t.Fatalf("marshal pkcs8: %v", err)
	}
	block := &pem.Block{Type: "PRIVATE KEY", Bytes: pkcs8}
	pemBytes := pem.EncodeToMemory(block)
	accessID := "test-signer@unit-test.iam.gserviceaccount.com"
	return pemBytes, accessID
}
