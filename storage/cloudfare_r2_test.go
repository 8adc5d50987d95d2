package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCloudflareR2Store_RequiresCredentials(t *testing.T) {
	_, err := NewCloudflareR2Store(context.Background(), CloudflareR2Config{AccountID: "acc", BucketName: "b"})
	assert.Error(t, err)
}

func TestGetPublicURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		key  string
		want string
	}{
		{name: "host only", base: "https://cdn.example.com", key: "teams.json", want: "https://cdn.example.com/fg/teams.json"},
		{name: "base path", base: "https://cdn.example.com/assets", key: "games.json", want: "https://cdn.example.com/assets/fg/games.json"},
		{name: "no base", base: "", key: "teams.json", want: ""},
		{name: "no key", base: "https://cdn.example.com", key: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &cloudflareR2Store{publicBaseURL: tt.base, prefix: "fg/"}
			assert.Equal(t, tt.want, s.GetPublicURL(tt.key))
		})
	}
}
