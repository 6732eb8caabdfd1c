package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalUploadNeverDurable(t *testing.T) {
	uploader := NewLocalUploader()

	result := uploader.Upload(context.Background(), "covers/evt-1.jpg", []byte("jpeg bytes"), "image/jpeg")

	assert.False(t, result.Durable)
	assert.Equal(t, "local://session/covers/evt-1.jpg", result.URL)
}

func TestLocalUploadAlwaysReturnsReference(t *testing.T) {
	uploader := NewLocalUploader()

	result := uploader.Upload(context.Background(), "covers/evt-2.jpg", nil, "image/jpeg")

	assert.NotEmpty(t, result.URL, "upload must always yield a usable reference")
}
