package blobstore

import (
	"bytes"
	"errors"
	"mime"
	"path/filepath"
	"strings"
)

// Magic byte signatures for allowed logo image types, keyed by lowercase
// extension.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	".svg":  {},                                                                           // text based, no magic bytes
}

var (
	ErrUnsupportedImage = errors.New("blobstore: file type not allowed for logos")
	ErrContentMismatch  = errors.New("blobstore: file content does not match its extension")
)

// ValidateLogo checks that a staged logo is one of the allowed image types
// and that its content matches the claimed extension. Returns the content
// type to store the object with.
func ValidateLogo(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	sigs, ok := magicBytes[ext]
	if !ok {
		return "", ErrUnsupportedImage
	}

	if len(sigs) > 0 {
		if len(data) < 4 {
			return "", ErrContentMismatch
		}
		matched := false
		for _, sig := range sigs {
			if bytes.HasPrefix(data, sig) {
				matched = true
				break
			}
		}
		if !matched {
			return "", ErrContentMismatch
		}
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return contentType, nil
}
