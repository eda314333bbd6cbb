// Package blobstore uploads binary assets (company logos) to an object
// store and returns publicly retrievable URLs. Two real backends are
// supported: Google Cloud Storage and any S3-compatible provider.
package blobstore

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
)

// Store uploads a payload under a key and returns its public URL once the
// upload has fully completed.
type Store interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// logoPrefix groups uploaded logos under one folder of the bucket.
const logoPrefix = "company_logos"

// LogoKey builds a collision-resistant object key from the upload time and
// the original filename.
func LogoKey(now time.Time, filename string) string {
	return fmt.Sprintf("%s/%d_%s", logoPrefix, now.UnixMilli(), sanitizeFilename(filename))
}

// sanitizeFilename strips any path components and characters that are
// unsafe in object keys or URLs.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "logo"
	}
	return b.String()
}
