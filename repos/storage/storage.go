package storage

import "context"

// UploadResult is what every upload returns. Durable is false when the
// backend was unavailable and URL points at a session-local reference
// instead of a persisted object. Callers get *some* usable reference no
// matter what; they can tell the two apart through Durable.
type UploadResult struct {
	URL     string
	Durable bool
}

// Uploader is the blob storage collaborator. Upload never fails: backend
// errors degrade to a session-local URL rather than aborting the caller.
type Uploader interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) UploadResult
}

// LocalURL builds the session-local fallback reference for a path.
func LocalURL(path string) string {
	return "local://session/" + path
}
