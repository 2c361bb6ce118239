package uploads

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "photo.png", "photo.png"},
		{"spaces", "san pham moi.jpg", "san_pham_moi.jpg"},
		{"path traversal", "../../etc/passwd.png", "passwd.png"},
		{"windows path", `C:\Users\x\cat.gif`, "cat.gif"},
		{"hidden file", ".htaccess", "htaccess"},
		{"control characters", "a\nb\x00c.png", "abc.png"},
		{"nothing left", "///", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.in); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestService_Save(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir)

	t.Run("allowed extension", func(t *testing.T) {
		name, err := svc.Save("cement bag.JPG", []byte("imagedata"))
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if name != "cement_bag.JPG" {
			t.Errorf("expected stored name cement_bag.JPG, got %q", name)
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("stored file unreadable: %v", err)
		}
		if string(data) != "imagedata" {
			t.Errorf("stored content mismatch: %q", data)
		}
	})

	t.Run("disallowed extension", func(t *testing.T) {
		_, err := svc.Save("script.sh", []byte("#!/bin/sh"))
		if !errors.Is(err, ErrDisallowedType) {
			t.Errorf("expected ErrDisallowedType, got %v", err)
		}
	})

	t.Run("same name overwrites", func(t *testing.T) {
		if _, err := svc.Save("photo.png", []byte("v1")); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if _, err := svc.Save("photo.png", []byte("v2")); err != nil {
			t.Fatalf("Save() overwrite error = %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "photo.png"))
		if err != nil {
			t.Fatalf("stored file unreadable: %v", err)
		}
		if string(data) != "v2" {
			t.Errorf("expected overwrite to win, got %q", data)
		}
	})

	t.Run("empty after sanitizing", func(t *testing.T) {
		if _, err := svc.Save("///", []byte("x")); !errors.Is(err, ErrEmptyFilename) {
			t.Errorf("expected ErrEmptyFilename, got %v", err)
		}
	})
}
