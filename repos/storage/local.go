package storage

import (
	"context"
	"sync"
)

// LocalUploader is the mock uploader. Uploads are held in memory for the
// lifetime of the process and are never durable.
type LocalUploader struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewLocalUploader() *LocalUploader {
	return &LocalUploader{blobs: map[string][]byte{}}
}

func (u *LocalUploader) Upload(ctx context.Context, path string, data []byte, contentType string) UploadResult {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.blobs[path] = append([]byte(nil), data...)
	return UploadResult{URL: LocalURL(path), Durable: false}
}
