package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"pressroom/internal/apperror"
)

type fakeUploader struct {
	lastPath        string
	lastContentType string
	err             error
}

func (f *fakeUploader) Upload(_ context.Context, path, contentType string, _ io.Reader) (string, error) {
	f.lastPath = path
	f.lastContentType = contentType
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example.com/" + path, nil
}

func TestImageUpload_KeyLayout(t *testing.T) {
	store := &fakeUploader{}
	service := NewImageService(store)

	url, err := service.Upload(context.Background(), "Фото Дня.JPG", "image/jpeg", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("ошибка загрузки: %v", err)
	}
	if url == "" {
		t.Fatal("URL не возвращён")
	}

	now := time.Now()
	prefix := fmt.Sprintf("images/%04d/%02d/", now.Year(), int(now.Month()))
	if !strings.HasPrefix(store.lastPath, prefix) {
		t.Fatalf("ключ должен начинаться с %q, получено %q", prefix, store.lastPath)
	}
	if !strings.HasSuffix(store.lastPath, ".jpg") {
		t.Fatalf("расширение должно приводиться к нижнему регистру: %q", store.lastPath)
	}
	if store.lastContentType != "image/jpeg" {
		t.Fatalf("content-type потерян: %q", store.lastContentType)
	}
}

func TestImageUpload_ProviderErrorPassedThrough(t *testing.T) {
	store := &fakeUploader{err: apperror.New(apperror.KindProviderError, "bucket is full")}
	service := NewImageService(store)

	_, err := service.Upload(context.Background(), "a.png", "image/png", strings.NewReader("data"))
	if !apperror.Is(err, apperror.KindProviderError) {
		t.Fatalf("ожидался ProviderError, получено: %v", err)
	}
	if !strings.Contains(err.Error(), "bucket is full") {
		t.Fatalf("текст ошибки провайдера должен сохраняться: %v", err)
	}
}
