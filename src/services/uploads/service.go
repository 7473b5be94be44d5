package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UploadResult is what the engine stores for a file answer: the path on disk
// and the public URL. Both are opaque strings to the form engine.
type UploadResult struct {
	FilePath string `json:"filePath"`
	URL      string `json:"url"`
}

// Saver persists a received file. The form engine only ever sees the
// returned identifier, never the bytes.
type Saver interface {
	Save(file *multipart.FileHeader, fieldID string, save func(*multipart.FileHeader, string) error) (*UploadResult, error)
}

const uploadDir = "./uploads/answers/"

// DiskSaver stores uploads on the local filesystem under a uuid name.
type DiskSaver struct{}

// Save writes the file via the framework's save callback and returns its
// stored identifiers. Field id goes into the name for traceability only.
func (DiskSaver) Save(file *multipart.FileHeader, fieldID string, save func(*multipart.FileHeader, string) error) (*UploadResult, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s%s", sanitize(fieldID), uuid.NewString(), filepath.Ext(file.Filename))
	path := uploadDir + name

	if err := save(file, path); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	baseURL := os.Getenv("UPLOAD_BASE_URL")
	if baseURL == "" {
		baseURL = "/uploads/answers"
	}

	return &UploadResult{
		FilePath: path,
		URL:      strings.TrimSuffix(baseURL, "/") + "/" + name,
	}, nil
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
