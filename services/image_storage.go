package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/Santosh-Prasad-Verma/Strevo-Store-sub000/config"
	"github.com/rs/zerolog/log"
)

// ImageStorage uploads product images and removes a product's image folder
type ImageStorage interface {
	Upload(ctx context.Context, file multipart.File, size int64, filename, contentType, folder string) (string, error)
	DeleteFolder(ctx context.Context, folder string) error
}

// NewImageStorage builds the driver selected by STORAGE_DRIVER
func NewImageStorage(ctx context.Context, cfg config.StorageConfig) (ImageStorage, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "cloudinary":
		s, err := NewCloudinaryService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "minio":
		s, err := NewMinioStorage(cfg)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// ProductImageFolder is where a product's images live, relative to the storage root
func ProductImageFolder(productID string) string {
	return path.Join("products", productID)
}

// UploadProductImages uploads files in order; the first URL is the thumbnail.
// On failure the folder is removed so no orphaned images remain.
func UploadProductImages(ctx context.Context, storage ImageStorage, files []*multipart.FileHeader, folder string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for i, fh := range files {
		url, err := uploadOne(ctx, storage, fh, fmt.Sprintf("%02d_%s", i, fh.Filename), folder)
		if err != nil {
			if cleanupErr := storage.DeleteFolder(ctx, folder); cleanupErr != nil {
				log.Warn().Err(cleanupErr).Str("component", "storage").Str("folder", folder).Msg("cleanup after failed upload")
			}
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func uploadOne(ctx context.Context, storage ImageStorage, fh *multipart.FileHeader, name, folder string) (string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", fh.Filename, err)
	}
	defer file.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return storage.Upload(ctx, file, fh.Size, name, contentType, folder)
}
