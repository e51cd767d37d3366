package storage

import (
	"context"
	"errors"
	"testing"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		base, key, want string
	}{
		{"https://cdn.example.com", "exports/s1/1.json", "https://cdn.example.com/exports/s1/1.json"},
		{"https://cdn.example.com/", "/exports/s1/1.json", "https://cdn.example.com/exports/s1/1.json"},
		{"https://cdn.example.com/public", "exports/a.json", "https://cdn.example.com/public/exports/a.json"},
		{"", "exports/a.json", ""},
		{"https://cdn.example.com", "", ""},
	}
	for _, tt := range tests {
		if got := PublicURL(tt.base, tt.key); got != tt.want {
			t.Errorf("PublicURL(%q, %q) = %q, want %q", tt.base, tt.key, got, tt.want)
		}
	}
}

func TestNewCloudflareR2UploaderRequiresConfig(t *testing.T) {
	cfg := CloudflareR2UploaderConfig{AccountID: "acc", BucketName: "bucket"}
	if cfg.Enabled() {
		t.Fatalf("partial config reported as enabled")
	}
	if _, err := NewCloudflareR2Uploader(context.Background(), cfg); !errors.Is(err, ErrIncompleteConfig) {
		t.Fatalf("want ErrIncompleteConfig, got %v", err)
	}
}
