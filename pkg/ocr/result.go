package ocr

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Confidence thresholds for grading blocks and whole extractions.
const (
	confidenceHigh   = 0.8
	confidenceMedium = 0.5
	qualityGood      = 0.65
)

// Quality grades an extraction by its average confidence.
type Quality string

const (
	QualityExcellent Quality = "Excellent"
	QualityGood      Quality = "Good"
	QualityFair      Quality = "Fair"
	QualityPoor      Quality = "Poor"
)

// Distribution counts blocks per confidence band.
type Distribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Result is one completed extraction. It is immutable once built; the
// session keeps the latest one around until the user clears it.
type Result struct {
	Source    string    `json:"source,omitempty"`
	Text      string    `json:"text"`
	Blocks    []Block   `json:"blocks"`
	CreatedAt time.Time `json:"created_at"`
}

// NewResult assembles a result from recognized blocks. Source is the upload
// filename, kept for the report header.
func NewResult(source string, blocks []Block) *Result {
	words := make([]string, 0, len(blocks))
	for _, b := range blocks {
		words = append(words, b.Text)
	}
	return &Result{
		Source:    source,
		Text:      strings.Join(words, " "),
		Blocks:    blocks,
		CreatedAt: time.Now(),
	}
}

// WordCount returns the number of recognized words.
func (r *Result) WordCount() int {
	return len(r.Blocks)
}

// CharCount returns the length of the extracted text, spaces included.
func (r *Result) CharCount() int {
	return len(r.Text)
}

// AverageConfidence returns the mean block confidence, 0 for an empty result.
func (r *Result) AverageConfidence() float64 {
	if len(r.Blocks) == 0 {
		return 0
	}
	var sum float64
	for _, b := range r.Blocks {
		sum += b.Confidence
	}
	return sum / float64(len(r.Blocks))
}

// Distribution buckets the blocks into high, medium and low confidence.
func (r *Result) Distribution() Distribution {
	var d Distribution
	for _, b := range r.Blocks {
		switch {
		case b.Confidence >= confidenceHigh:
			d.High++
		case b.Confidence >= confidenceMedium:
			d.Medium++
		default:
			d.Low++
		}
	}
	return d
}

// Quality grades the extraction overall.
func (r *Result) Quality() Quality {
	avg := r.AverageConfidence()
	switch {
	case avg >= confidenceHigh:
		return QualityExcellent
	case avg >= qualityGood:
		return QualityGood
	case avg >= confidenceMedium:
		return QualityFair
	default:
		return QualityPoor
	}
}

// Report renders a plain-text summary suitable for download.
func (r *Result) Report() string {
	d := r.Distribution()

	var b strings.Builder
	b.WriteString("OCR Extraction Report\n")
	b.WriteString("=====================\n\n")
	if r.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", r.Source)
	}
	fmt.Fprintf(&b, "Extracted: %s\n\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Words: %d\n", r.WordCount())
	fmt.Fprintf(&b, "Characters: %d\n", r.CharCount())
	fmt.Fprintf(&b, "Average confidence: %.1f%%\n", r.AverageConfidence()*100)
	fmt.Fprintf(&b, "Quality: %s\n\n", r.Quality())
	fmt.Fprintf(&b, "Confidence distribution: %d high / %d medium / %d low\n\n", d.High, d.Medium, d.Low)
	b.WriteString("Extracted Text\n")
	b.WriteString("--------------\n")
	b.WriteString(r.Text)
	b.WriteString("\n")
	return b.String()
}

// JSON renders the result with its summary statistics for download.
func (r *Result) JSON() ([]byte, error) {
	out := struct {
		*Result
		WordCount         int          `json:"word_count"`
		CharCount         int          `json:"char_count"`
		AverageConfidence float64      `json:"average_confidence"`
		Quality           Quality      `json:"quality"`
		Distribution      Distribution `json:"distribution"`
	}{
		Result:            r,
		WordCount:         r.WordCount(),
		CharCount:         r.CharCount(),
		AverageConfidence: r.AverageConfidence(),
		Quality:           r.Quality(),
		Distribution:      r.Distribution(),
	}
	return json.MarshalIndent(out, "", "  ")
}
