package contract

import "context"

// UploadedMedia describes a file accepted by the media host.
type UploadedMedia struct {
	SecureURL string
	PublicID  string
}

// IMediaStorage defines the interface to the external media host that stores
// profile pictures.
type IMediaStorage interface {
	// UploadImage pushes a local file into the given remote folder and
	// returns the hosted copy's secure URL and public ID.
	UploadImage(ctx context.Context, localPath, folder string) (*UploadedMedia, error)
	// DeleteImage removes a hosted file by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
	// PublicIDFromURL recovers the public ID embedded in a secure URL
	// previously returned by UploadImage.
	PublicIDFromURL(secureURL string) string
}
