package local

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"resume-ats/internal/shared/util"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	key, size, mimeType, err := store.Save(context.Background(), "ronald@example.com", "Ronald Gunawan.pdf", strings.NewReader("%PDF-1.4 body"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len("%PDF-1.4 body")) {
		t.Fatalf("unexpected size %d", size)
	}
	if mimeType != "application/pdf" {
		t.Fatalf("unexpected mime type %q", mimeType)
	}
	if !strings.HasPrefix(key, util.HashKey("ronald@example.com")+string(filepath.Separator)) {
		t.Fatalf("expected key under hashed owner, got %q", key)
	}
	if !strings.HasSuffix(key, "_Ronald Gunawan.pdf") {
		t.Fatalf("expected sanitized file name suffix, got %q", key)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != "%PDF-1.4 body" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestSaveWithKeyRejectsTraversal(t *testing.T) {
	store := &Store{baseDir: t.TempDir()}
	if _, err := store.SaveWithKey(context.Background(), "../escape.txt", "text/plain", strings.NewReader("x")); err == nil {
		t.Fatal("expected traversal key to be rejected")
	}
	if _, err := store.Open(context.Background(), "../escape.txt"); err == nil {
		t.Fatal("expected traversal key to be rejected on open")
	}
}

func TestSaveRejectsBadFileName(t *testing.T) {
	store := New(t.TempDir())
	if _, _, _, err := store.Save(context.Background(), "owner", "../cv.pdf", strings.NewReader("x")); err == nil {
		t.Fatal("expected invalid file name error")
	}
}

func TestSaveHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := New(t.TempDir())
	if _, _, _, err := store.Save(ctx, "owner", "cv.pdf", strings.NewReader("x")); err == nil {
		t.Fatal("expected context error")
	}
}
