package v1

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"go-internmatch-backend/pkg/apperror"
	"go-internmatch-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"
)

const (
	maxUploadBytes  = 10 << 20 // 10 MiB
	imageMaxDim     = 1200
	jpegQuality     = 80
	bucketAvatars   = "avatars"
	bucketLogos     = "logos"
	bucketDocuments = "documents"
)

// storedUpload is the outcome of reading, normalizing and naming one
// multipart file. Images come out re-encoded as JPEG.
type storedUpload struct {
	Data        []byte
	Name        string
	ContentType string
	Original    string
}

// readUpload pulls the named multipart file out of the request, sniffs its
// content type and, for images, downscales and re-encodes it.
func readUpload(c *gin.Context, field string) (*storedUpload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, apperror.BadRequest("No file uploaded")
	}
	if header.Size > maxUploadBytes {
		return nil, apperror.BadRequest("File exceeds the 10 MB limit")
	}

	src, err := header.Open()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(raw) > maxUploadBytes {
		return nil, apperror.BadRequest("File exceeds the 10 MB limit")
	}

	contentType := http.DetectContentType(raw)
	upload := &storedUpload{Original: header.Filename}

	if strings.HasPrefix(contentType, "image/") {
		compressed, cerr := compressImage(raw, imageMaxDim, jpegQuality)
		if cerr != nil {
			logger.Log.Warn("image compression failed, storing original",
				"filename", header.Filename, "error", cerr)
			upload.Data = raw
			upload.ContentType = contentType
			upload.Name = fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitizeFilename(header.Filename))
		} else {
			upload.Data = compressed
			upload.ContentType = "image/jpeg"
			upload.Name = fmt.Sprintf("%d_%s.jpg", time.Now().UnixNano(), sanitizeFilename(header.Filename))
		}
		return upload, nil
	}

	upload.Data = raw
	upload.ContentType = contentType
	upload.Name = fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitizeFilename(header.Filename))
	return upload, nil
}

// compressImage downscales to maxDim on the longest side, preserving aspect
// ratio, and re-encodes as JPEG.
func compressImage(data []byte, maxDim, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	newWidth, newHeight := width, height
	if width >= height && width > maxDim {
		newWidth = maxDim
		newHeight = int(float64(height) * float64(maxDim) / float64(width))
	} else if height > width && height > maxDim {
		newHeight = maxDim
		newWidth = int(float64(width) * float64(maxDim) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeFilename strips everything object-store-hostile from a client
// filename, keeping ASCII letters, digits, dots, dashes and underscores.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r > unicode.MaxASCII:
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "file"
	}
	if len(out) > 80 {
		out = out[:80]
	}
	return out
}
