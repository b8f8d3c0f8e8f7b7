package utils

import (
	"errors"
	"testing"
)

func TestCleanStoragePath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"imagenes/foto.jpg", "imagenes/foto.jpg", nil},
		{"  clips/intro.mp4 ", "clips/intro.mp4", nil},
		{`multimedia\archivos//intro.mp4`, "multimedia/archivos/intro.mp4", nil},
		{"./docs/./guion.pdf", "docs/guion.pdf", nil},
		{"colecciones/", "colecciones", nil},
		{"", "", ErrEmptyPath},
		{"   ", "", ErrEmptyPath},
		{"../etc/passwd", "", ErrUnsafePath},
		{"imagenes/../../secret", "", ErrUnsafePath},
		{"/var/media/a.jpg", "", ErrUnsafePath},
		{`C:\media\a.jpg`, "", ErrUnsafePath},
		{"foto?.jpg", "", ErrInvalidCharacter},
		{"docs/con.txt", "", ErrInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CleanStoragePath(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanStoragePathTooLong(t *testing.T) {
	long := make([]byte, MaxStoragePathLength+1)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := CleanStoragePath(string(long)); !errors.Is(err, ErrPathTooLong) {
		t.Fatalf("err = %v, want ErrPathTooLong", err)
	}
}
