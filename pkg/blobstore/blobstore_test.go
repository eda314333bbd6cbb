package blobstore

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogoKey(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	t.Run("Should prefix with the logo folder and timestamp", func(t *testing.T) {
		key := LogoKey(now, "acme logo.png")
		assert.Equal(t, "company_logos/1700000000000_acme_logo.png", key)
	})

	t.Run("Should strip path components", func(t *testing.T) {
		key := LogoKey(now, "../../etc/passwd")
		assert.False(t, strings.Contains(key, ".."))
		assert.True(t, strings.HasPrefix(key, "company_logos/1700000000000_"))
	})

	t.Run("Should fall back for a filename with no safe characters", func(t *testing.T) {
		key := LogoKey(now, "###")
		assert.Equal(t, "company_logos/1700000000000____", key)
	})
}

func TestValidateLogo(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}
	jpg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}

	t.Run("Should accept matching content", func(t *testing.T) {
		ct, err := ValidateLogo("logo.png", png)
		assert.NoError(t, err)
		assert.Equal(t, "image/png", ct)

		ct, err = ValidateLogo("photo.JPG", jpg)
		assert.NoError(t, err)
		assert.Equal(t, "image/jpeg", ct)
	})

	t.Run("Should reject disallowed extensions", func(t *testing.T) {
		_, err := ValidateLogo("payload.exe", png)
		assert.ErrorIs(t, err, ErrUnsupportedImage)

		_, err = ValidateLogo("archive.zip", []byte("PK"))
		assert.ErrorIs(t, err, ErrUnsupportedImage)
	})

	t.Run("Should reject content that does not match the extension", func(t *testing.T) {
		_, err := ValidateLogo("logo.png", jpg)
		assert.ErrorIs(t, err, ErrContentMismatch)

		_, err = ValidateLogo("logo.png", []byte{0x01})
		assert.ErrorIs(t, err, ErrContentMismatch)
	})

	t.Run("Should accept svg without magic byte checks", func(t *testing.T) {
		ct, err := ValidateLogo("logo.svg", []byte("<svg></svg>"))
		assert.NoError(t, err)
		assert.NotEmpty(t, ct)
	})
}
