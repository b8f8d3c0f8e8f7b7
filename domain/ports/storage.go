package ports

// StoragePort แปลง path ที่เก็บใน record (archivo, miniatura) เป็น URL
// ทำให้เปลี่ยน storage provider ได้ง่าย (Local, S3)
type StoragePort interface {
	// GetFileURL รับ URL สำหรับเข้าถึงไฟล์
	GetFileURL(path string) string

	// GetProviderName ชื่อ provider (local, s3)
	GetProviderName() string
}
