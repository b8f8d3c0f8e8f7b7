package utils

import (
	"errors"
	"path"
	"regexp"
	"strings"
)

var (
	ErrInvalidPath      = errors.New("invalid path format")
	ErrUnsafePath       = errors.New("unsafe path detected")
	ErrPathTooLong      = errors.New("path is too long")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrInvalidCharacter = errors.New("path contains invalid characters")
)

// MaxStoragePathLength ตรงกับขนาด column archivo/miniatura
const MaxStoragePathLength = 255

var (
	dangerousChars = regexp.MustCompile(`[<>:"|?*\x00-\x1f\x7f]`)
	repeatedSlash  = regexp.MustCompile(`/+`)
	windowsDrive   = regexp.MustCompile(`^[A-Za-z]:`)
)

var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// CleanStoragePath ตรวจและ normalize path ของไฟล์ใน storage (relative, ใช้ "/")
// เช่น "multimedia\\archivos//intro.mp4" -> "multimedia/archivos/intro.mp4"
func CleanStoragePath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", ErrEmptyPath
	}
	if len(p) > MaxStoragePathLength {
		return "", ErrPathTooLong
	}

	p = strings.ReplaceAll(p, "\\", "/")

	// directory traversal และ absolute path
	if windowsDrive.MatchString(p) || strings.HasPrefix(p, "/") {
		return "", ErrUnsafePath
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", ErrUnsafePath
		}
	}

	if dangerousChars.MatchString(p) {
		return "", ErrInvalidCharacter
	}

	p = repeatedSlash.ReplaceAllString(p, "/")
	p = strings.TrimSuffix(p, "/")
	p = strings.TrimPrefix(path.Clean("/"+p), "/")

	for _, part := range strings.Split(p, "/") {
		base := strings.ToUpper(strings.TrimSuffix(part, path.Ext(part)))
		if _, ok := reservedNames[base]; ok {
			return "", ErrInvalidPath
		}
	}

	if p == "" || p == "." {
		return "", ErrEmptyPath
	}
	return p, nil
}
