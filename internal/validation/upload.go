package validation

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// MaxLogoSize caps company logo uploads at 2MB.
	MaxLogoSize = 2 * 1024 * 1024
	// MaxResumeSize caps resume uploads at 2MB.
	MaxResumeSize = 2 * 1024 * 1024
	// MaxAvatarSize caps profile avatar uploads at 5MB.
	MaxAvatarSize = 5 * 1024 * 1024
)

var imageExtensions = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// ValidateImageUpload checks that filename names an accepted image format
// (jpeg, jpg, png, gif) and that size does not exceed maxSize. It returns
// the canonical content type for the extension.
func ValidateImageUpload(filename string, size int64, maxSize int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := imageExtensions[ext]
	if !ok {
		return "", fmt.Errorf("file must be a jpeg, jpg, png or gif image")
	}
	if size <= 0 {
		return "", fmt.Errorf("file is empty")
	}
	if size > maxSize {
		return "", fmt.Errorf("file must not exceed %dMB", maxSize/(1024*1024))
	}
	return contentType, nil
}

// ValidateResumeUpload checks that filename is a PDF within the resume size
// limit and returns the content type.
func ValidateResumeUpload(filename string, size int64) (string, error) {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return "", fmt.Errorf("resume must be a PDF document")
	}
	if size <= 0 {
		return "", fmt.Errorf("file is empty")
	}
	if size > MaxResumeSize {
		return "", fmt.Errorf("resume must not exceed %dMB", MaxResumeSize/(1024*1024))
	}
	return "application/pdf", nil
}
