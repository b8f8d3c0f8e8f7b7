package storage

import (
	"fmt"
	"os"
	"strings"

	"pc2-api/domain/ports"
)

// LocalStorage implements StoragePort สำหรับไฟล์ใน local filesystem (เสิร์ฟผ่าน fiber static)
type LocalStorage struct {
	basePath string // เส้นทางหลักที่เก็บไฟล์ (เช่น ./media)
	baseURL  string // URL สำหรับเข้าถึงไฟล์ (เช่น http://localhost:8000/media)
}

var _ ports.StoragePort = (*LocalStorage)(nil)

type LocalStorageConfig struct {
	BasePath string
	BaseURL  string
}

// NewLocalStorage สร้าง LocalStorage instance
func NewLocalStorage(config LocalStorageConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: config.BasePath,
		baseURL:  strings.TrimSuffix(config.BaseURL, "/"),
	}, nil
}

// GetFileURL สร้าง URL สำหรับเข้าถึงไฟล์
func (l *LocalStorage) GetFileURL(path string) string {
	if isAbsoluteURL(path) {
		return path
	}
	path = strings.ReplaceAll(path, "\\", "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return l.baseURL + path
}

func (l *LocalStorage) GetProviderName() string {
	return "local"
}

// BasePath directory ที่ต้อง mount เป็น static route
func (l *LocalStorage) BasePath() string {
	return l.basePath
}

func isAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
