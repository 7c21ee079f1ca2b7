package external_services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "versioned delivery URL",
			url:  "https://res.cloudinary.com/demo/image/upload/v1699999999/profile_pictures/abc123.jpg",
			want: "profile_pictures/abc123",
		},
		{
			name: "no version segment",
			url:  "https://res.cloudinary.com/demo/image/upload/profile_pictures/abc123.png",
			want: "profile_pictures/abc123",
		},
		{
			name: "no folder",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/abc123.jpg",
			want: "abc123",
		},
		{
			name: "no extension",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/profile_pictures/abc123",
			want: "profile_pictures/abc123",
		},
		{
			name: "not a delivery URL",
			url:  "https://example.com/images/abc123.jpg",
			want: "",
		},
		{
			name: "upload is the last segment",
			url:  "https://res.cloudinary.com/demo/image/upload",
			want: "",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PublicIDFromURL(tc.url))
		})
	}
}
