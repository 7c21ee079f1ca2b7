package usecasecontract

import "time"

// IConfigProvider exposes the configuration values the usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetUploadFolder() string
}
