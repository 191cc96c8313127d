package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestEnsureDownloads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("archive-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	archive := filepath.Join(dir, "driver.zip")
	binary := filepath.Join(dir, "driver")

	downloaded, err := New(srv.Client()).Ensure(context.Background(), srv.URL, archive, binary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !downloaded {
		t.Error("expected a download to happen")
	}

	data, err := os.ReadFile(archive)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "archive-bytes" {
		t.Errorf("archive content = %q", data)
	}
}

func TestEnsureSkipsWhenInstalled(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	dir := t.TempDir()
	binary := filepath.Join(dir, "driver")
	if err := os.WriteFile(binary, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}

	downloaded, err := New(srv.Client()).Ensure(context.Background(), srv.URL, filepath.Join(dir, "driver.zip"), binary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if downloaded {
		t.Error("expected download to be skipped")
	}
	if hits.Load() != 0 {
		t.Errorf("expected no network calls, got %d", hits.Load())
	}
}

func TestEnsureRedownloadsForNonExecutable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	binary := filepath.Join(dir, "driver")
	// Present but not executable: treated as not installed.
	if err := os.WriteFile(binary, []byte("junk"), 0644); err != nil {
		t.Fatal(err)
	}

	downloaded, err := New(srv.Client()).Ensure(context.Background(), srv.URL, filepath.Join(dir, "driver.zip"), binary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !downloaded {
		t.Error("expected a download for non-executable binary")
	}
}

func TestDownloadHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	err := New(srv.Client()).Download(context.Background(), srv.URL, filepath.Join(t.TempDir(), "out"))
	if !errors.Is(err, ErrDownload) {
		t.Errorf("expected ErrDownload, got %v", err)
	}
}

func TestDownloadRemovesPartialFile(t *testing.T) {
	// Promise more bytes than delivered: the client sees a truncated body.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		w.Write([]byte("partial"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "driver.zip")
	err := New(srv.Client()).Download(context.Background(), srv.URL, dest)
	if !errors.Is(err, ErrDownload) {
		t.Fatalf("expected ErrDownload, got %v", err)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Errorf("truncated archive left at %s", dest)
	}
}

func TestDownloadInvalidURL(t *testing.T) {
	// The resolver's sentinel URL must fail here, visibly.
	err := New(nil).Download(context.Background(), "xxx", filepath.Join(t.TempDir(), "out"))
	if !errors.Is(err, ErrDownload) {
		t.Errorf("expected ErrDownload, got %v", err)
	}
}
