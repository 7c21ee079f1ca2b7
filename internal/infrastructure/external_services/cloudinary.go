package external_services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/nebiyou-tadesse/go-user-service/internal/domain/contract"
)

// CloudinaryService talks to the Cloudinary media host that stores profile
// pictures.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var _ contract.IMediaStorage = (*CloudinaryService)(nil)

// NewCloudinaryService builds a client from account credentials.
func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary client: %w", err)
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadImage pushes a local file into the given remote folder.
func (s *CloudinaryService) UploadImage(ctx context.Context, localPath, folder string) (*contract.UploadedMedia, error) {
	resp, err := s.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	return &contract.UploadedMedia{
		SecureURL: resp.SecureURL,
		PublicID:  resp.PublicID,
	}, nil
}

// DeleteImage removes a hosted file by its public ID.
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("failed to delete image %s: %s", publicID, resp.Result)
	}
	return nil
}

// PublicIDFromURL recovers the public ID from a Cloudinary delivery URL:
// https://res.cloudinary.com/<cloud>/image/upload/v123/<folder>/<name>.<ext>
// yields "<folder>/<name>". Returns "" when the URL does not look like one
// of ours.
func (s *CloudinaryService) PublicIDFromURL(secureURL string) string {
	return PublicIDFromURL(secureURL)
}

func PublicIDFromURL(secureURL string) string {
	u, err := url.Parse(secureURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	uploadIdx := -1
	for i, seg := range segments {
		if seg == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 0 || uploadIdx == len(segments)-1 {
		return ""
	}
	rest := segments[uploadIdx+1:]
	if len(rest) > 1 && isVersionSegment(rest[0]) {
		rest = rest[1:]
	}
	publicID := strings.Join(rest, "/")
	if ext := strings.LastIndex(publicID, "."); ext > strings.LastIndex(publicID, "/") {
		publicID = publicID[:ext]
	}
	return publicID
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
