package utils

import (
	"errors"
	"mime/multipart" // Uploaded file headers
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Collision-resistant file names
)

// UploadURLPrefix is the static path prefix uploaded images are served under
const UploadURLPrefix = "/uploads"

// MaxUploadSize caps uploaded screenshots at 8 MiB
const MaxUploadSize = 8 << 20

// Allowed image extensions, lowercase
var allowedImageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var (
	ErrUploadTooLarge = errors.New("uploaded file exceeds size limit")
	ErrUploadType     = errors.New("uploaded file is not a supported image type")
)

// SaveUpload writes an uploaded image into dir under a unique generated name,
// preserving the original extension, and returns its relative serving URL.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if file.Size > MaxUploadSize {
		return "", ErrUploadTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return "", ErrUploadType
	}
	// Ensure the upload directory exists
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext // Unique file name, original extension kept
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return path.Join(UploadURLPrefix, name), nil
}

// RemoveUpload deletes a previously stored upload by its serving URL.
// Used to clean up the file when the trade insert it belongs to fails.
func RemoveUpload(imageURL, dir string) error {
	name := path.Base(imageURL) // URL is always prefix + base name
	if name == "." || name == "/" {
		return nil
	}
	return os.Remove(filepath.Join(dir, name))
}
