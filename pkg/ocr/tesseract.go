package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is the default Engine, backed by a local tesseract install via
// gosseract. Each Recognize call uses a fresh client; the zero value is ready
// to use.
type Tesseract struct {
	// Language is the tesseract language code. Empty means "eng".
	Language string
}

// Probe verifies that tesseract is usable with the configured language.
// Called once at startup so the UI can disable the tool with a reason
// instead of failing on first use.
func (t *Tesseract) Probe() error {
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return fmt.Errorf("tesseract unavailable: %w", err)
	}
	want := t.language()
	for _, l := range langs {
		if l == want {
			return nil
		}
	}
	return fmt.Errorf("tesseract language %q not installed", want)
}

// Recognize runs word-level OCR over the image bytes.
func (t *Tesseract) Recognize(ctx context.Context, image []byte) ([]Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.language()); err != nil {
		return nil, fmt.Errorf("set language: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("recognition failed: %w", err)
	}

	blocks := make([]Block, 0, len(boxes))
	for _, b := range boxes {
		if b.Word == "" {
			continue
		}
		blocks = append(blocks, Block{
			Text: b.Word,
			// gosseract reports percentages.
			Confidence: b.Confidence / 100,
			Region: Region{
				X:      b.Box.Min.X,
				Y:      b.Box.Min.Y,
				Width:  b.Box.Dx(),
				Height: b.Box.Dy(),
			},
		})
	}
	return blocks, nil
}

func (t *Tesseract) language() string {
	if t.Language == "" {
		return "eng"
	}
	return t.Language
}
