package storage

import (
	"context"
	"fmt"
	"log"

	gcs "cloud.google.com/go/storage"
)

// CloudUploader is the live uploader backed by a Cloud Storage bucket.
type CloudUploader struct {
	Client *gcs.Client
	Bucket string
}

func NewCloudUploader(client *gcs.Client, bucket string) *CloudUploader {
	return &CloudUploader{
		Client: client,
		Bucket: bucket,
	}
}

func (u *CloudUploader) Upload(ctx context.Context, path string, data []byte, contentType string) UploadResult {
	writer := u.Client.Bucket(u.Bucket).Object(path).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		log.Printf("Failed to write object %s: %v\n", path, err)
		writer.Close()
		return UploadResult{URL: LocalURL(path), Durable: false}
	}
	if err := writer.Close(); err != nil {
		log.Printf("Failed to finalize object %s: %v\n", path, err)
		return UploadResult{URL: LocalURL(path), Durable: false}
	}

	return UploadResult{
		URL:     fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.Bucket, path),
		Durable: true,
	}
}
