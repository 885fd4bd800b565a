package v1

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "resume_2026.pdf", sanitizeFilename("resume 2026.pdf"))
	assert.Equal(t, "photo.jpg", sanitizeFilename("../../photo.jpg"))
	assert.Equal(t, "file", sanitizeFilename("ประวัติ"))
	assert.Equal(t, "file", sanitizeFilename(""))
}

func TestCompressImage(t *testing.T) {
	t.Run("Should downscale the long side and re-encode as JPEG", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 2400, 1200))
		var buf bytes.Buffer
		assert.NoError(t, png.Encode(&buf, src))

		out, err := compressImage(buf.Bytes(), 1200, 80)
		assert.NoError(t, err)

		decoded, err := jpeg.Decode(bytes.NewReader(out))
		assert.NoError(t, err)
		assert.Equal(t, 1200, decoded.Bounds().Dx())
		assert.Equal(t, 600, decoded.Bounds().Dy())
	})

	t.Run("Should keep small images at their original size", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 300, 200))
		var buf bytes.Buffer
		assert.NoError(t, png.Encode(&buf, src))

		out, err := compressImage(buf.Bytes(), 1200, 80)
		assert.NoError(t, err)

		decoded, err := jpeg.Decode(bytes.NewReader(out))
		assert.NoError(t, err)
		assert.Equal(t, 300, decoded.Bounds().Dx())
	})

	t.Run("Should fail on non-image bytes", func(t *testing.T) {
		_, err := compressImage([]byte("definitely not an image"), 1200, 80)
		assert.Error(t, err)
	})
}

func TestSplitSkills(t *testing.T) {
	assert.Nil(t, splitSkills(""))
	assert.Equal(t, []string{"Go", "SQL"}, splitSkills("Go, SQL"))
	assert.Equal(t, []string{"Go"}, splitSkills(",Go,,  ,"))
}

func TestParseDatePtr(t *testing.T) {
	iso := "2026-06-01"
	parsed := parseDatePtr(&iso)
	assert.NotNil(t, parsed)
	assert.Equal(t, "2026-06-01", parsed.Format("2006-01-02"))

	junk := "first of June"
	assert.Nil(t, parseDatePtr(&junk))
	assert.Nil(t, parseDatePtr(nil))
}
