package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pressroom/internal/apperror"
	"pressroom/internal/config"
)

func testStorage(url string, timeout time.Duration) *SupabaseStorage {
	return NewSupabaseStorage(&config.Config{
		SupabaseURL:    url,
		SupabaseKey:    "test-key",
		StorageBucket:  "articles",
		StorageTimeout: timeout,
	})
}

// Хранилище, не ответившее в бюджет, даёт Timeout, а не зависший вызов.
func TestUpload_TimeoutBudget(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	s := testStorage(srv.URL, 100*time.Millisecond)

	start := time.Now()
	_, err := s.Upload(context.Background(), "images/2026/09/x.jpg", "image/jpeg", strings.NewReader("data"))
	elapsed := time.Since(start)

	if !apperror.Is(err, apperror.KindTimeout) {
		t.Fatalf("ожидался Timeout, получено: %v", err)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("вызов обязан завершаться в пределах бюджета, заняло %v", elapsed)
	}
}

func TestUpload_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"statusCode":"500","error":"Internal","message":"bucket is full"}`))
	}))
	defer srv.Close()

	s := testStorage(srv.URL, 5*time.Second)

	_, err := s.Upload(context.Background(), "images/2026/09/x.jpg", "image/jpeg", strings.NewReader("data"))
	if !apperror.Is(err, apperror.KindProviderError) {
		t.Fatalf("ожидался ProviderError, получено: %v", err)
	}
}
