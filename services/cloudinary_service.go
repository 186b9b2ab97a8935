package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"
)

type CloudinaryService struct {
	cld  *cloudinary.Cloudinary
	root string
}

func NewCloudinaryService(cloudName, apiKey, apiSecret, root string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &CloudinaryService{cld: cld, root: root}, nil
}

func (s *CloudinaryService) folderPath(folder string) string {
	return path.Join(s.root, folder)
}

// Upload stores one image and returns its secure URL. Size and content type
// are detected by Cloudinary.
func (s *CloudinaryService) Upload(ctx context.Context, file multipart.File, _ int64, filename, _ string, folder string) (string, error) {
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         s.folderPath(folder),
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if filename != "" {
		params.PublicID = strings.TrimSuffix(filename, path.Ext(filename))
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload of %s returned no URL", filename)
	}
	return result.SecureURL, nil
}

// DeleteFolder removes every asset under the folder, then the folder itself
func (s *CloudinaryService) DeleteFolder(ctx context.Context, folder string) error {
	full := s.folderPath(folder)
	if _, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{full},
	}); err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", full, err)
	}

	// Cloudinary usually drops empty folders on its own
	if _, err := s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{Folder: full}); err != nil {
		log.Debug().Err(err).Str("component", "storage").Str("folder", full).Msg("folder delete skipped")
	}
	return nil
}
