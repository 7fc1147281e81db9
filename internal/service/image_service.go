package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"petcare-facility-api/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ImageService stores uploaded images under the configured upload root and
// returns the relative path persisted on the entity. The upload root is
// served as static files by the router.
type ImageService struct {
	cfg config.UploadConfig
	log *logrus.Logger
}

func NewImageService(cfg config.UploadConfig, log *logrus.Logger) *ImageService {
	return &ImageService{cfg: cfg, log: log}
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Save writes the uploaded file to <root>/<subdir>/<uuid><ext> and returns
// the path relative to the upload root.
func (s *ImageService) Save(file multipart.File, header *multipart.FileHeader, subdir string) (string, error) {
	if header.Size > s.cfg.MaxSizeBytes {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", s.cfg.MaxSizeBytes)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}

	dir := filepath.Join(s.cfg.Dir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := uuid.New().String() + ext
	fullPath := filepath.Join(dir, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("write image file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// Replace stores the new file and removes the previous one when present.
// A failed removal is logged, not surfaced: the new image is already saved.
func (s *ImageService) Replace(file multipart.File, header *multipart.FileHeader, subdir, oldPath string) (string, error) {
	newPath, err := s.Save(file, header, subdir)
	if err != nil {
		return "", err
	}

	if oldPath != "" {
		if err := s.Remove(oldPath); err != nil {
			s.log.Warnf("Failed to remove replaced image %s: %+v", oldPath, err)
		}
	}

	return newPath, nil
}

// Remove deletes a stored image by its relative path.
func (s *ImageService) Remove(relPath string) error {
	// Reject traversal out of the upload root.
	clean := filepath.Clean(relPath)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid image path %q", relPath)
	}

	err := os.Remove(filepath.Join(s.cfg.Dir, clean))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
