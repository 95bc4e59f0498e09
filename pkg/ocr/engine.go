// Package ocr extracts text from images and grades the result. Recognition
// is behind the Engine interface so the UI and reports stay testable without
// a tesseract install.
package ocr

import "context"

// Region is a block's bounding box in image pixel coordinates.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Block is one recognized span of text. Confidence is normalized to [0, 1];
// engines that report percentages scale down before returning.
type Block struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Region     Region  `json:"region"`
}

// Engine recognizes text in an encoded image (PNG, JPEG, BMP, TIFF).
type Engine interface {
	// Recognize extracts text blocks from the image bytes. A nil error with
	// zero blocks means the engine ran but found no text.
	Recognize(ctx context.Context, image []byte) ([]Block, error)
}
