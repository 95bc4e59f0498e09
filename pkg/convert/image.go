package convert

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	// Decoders for every upload format the converter accepts.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 90

// pngToJPG re-encodes an image as JPEG. Transparency is flattened onto a
// white background since JPEG has no alpha channel.
func pngToJPG(in Payload) (*Result, error) {
	img, err := decodeImage(in.Data)
	if err != nil {
		return nil, err
	}

	flat := image.NewRGBA(img.Bounds())
	draw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, img.Bounds().Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return &Result{Data: buf.Bytes(), MIME: "image/jpeg", Ext: "jpg"}, nil
}

// jpgToPNG re-encodes an image as PNG.
func jpgToPNG(in Payload) (*Result, error) {
	img, err := decodeImage(in.Data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return &Result{Data: buf.Bytes(), MIME: "image/png", Ext: "png"}, nil
}

// imageToBase64 wraps the raw upload bytes in a base64 data URL. The image
// is decoded first only to reject non-image uploads early.
func imageToBase64(in Payload) (*Result, error) {
	if _, err := decodeImage(in.Data); err != nil {
		return nil, err
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(in.Filename)), ".")
	if ext == "" || ext == "jpg" {
		ext = "jpeg"
	}

	encoded := base64.StdEncoding.EncodeToString(in.Data)
	url := fmt.Sprintf("data:image/%s;base64,%s", ext, encoded)
	return &Result{Data: []byte(url), MIME: "text/plain", Ext: "txt", IsText: true}, nil
}

// base64ToImage decodes a base64 string (with or without a data URL prefix)
// and normalizes the image to PNG.
func base64ToImage(in Payload) (*Result, error) {
	s := strings.TrimSpace(string(in.Data))
	if i := strings.Index(s, "base64,"); i >= 0 {
		s = s[i+len("base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}

	img, err := decodeImage(raw)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return &Result{Data: buf.Bytes(), MIME: "image/png", Ext: "png"}, nil
}

// decodeImage decodes any registered image format.
func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("not a decodable image: %w", err)
	}
	return img, nil
}
