package utils

import (
	"bytes"
	"image"
	_ "image/gif" // Register GIF decoder
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"mime/multipart"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"shopcart-backend/pkg/logger"
)

// ProcessImage resizes an uploaded product image and converts it to WebP.
func ProcessImage(file multipart.File, filename string) ([]byte, string, error) {
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", err
	}
	logger.Debug().Str("filename", filename).Str("format", format).Msg("Processing product image")

	// Product tiles render at 400px; 800 keeps retina displays sharp.
	bounds := img.Bounds()
	if bounds.Dx() > 800 {
		img = imaging.Resize(img, 800, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer

	err = webp.Encode(&buf, img, &webp.Options{
		Lossless: false,
		Quality:  85,
	})
	if err != nil {
		// Fall back to JPEG when WebP encoding fails
		logger.Warn().Err(err).Msg("WebP encoding failed, falling back to JPEG")
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/jpeg", nil
	}

	return buf.Bytes(), "image/webp", nil
}
