// Package drawing implements the drawing canvas: a shape list drawn in one
// of several modes, with undo, an explicit clear, and JSON or rasterized
// PNG export.
package drawing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
)

// Canvas size limits and defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	MinWidth      = 400
	MaxWidth      = 1200
	MinHeight     = 300
	MaxHeight     = 800

	DefaultStrokeWidth = 5
	MaxStrokeWidth     = 50
)

// Mode is a drawing mode.
type Mode string

const (
	ModeFreedraw Mode = "freedraw"
	ModeLine     Mode = "line"
	ModeRect     Mode = "rect"
	ModeCircle   Mode = "circle"
)

// Modes lists the drawing modes in display order.
var Modes = []Mode{ModeFreedraw, ModeLine, ModeRect, ModeCircle}

// Point is a canvas coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shape is one drawn element. Freedraw takes any number of points; line and
// rect take two (ends / opposite corners); circle takes center plus a point
// on the rim.
type Shape struct {
	Mode        Mode    `json:"mode"`
	Points      []Point `json:"points"`
	StrokeWidth int     `json:"stroke_width"`
	StrokeColor string  `json:"stroke_color"`
	FillColor   string  `json:"fill_color,omitempty"`
}

// Canvas holds the shape list plus the surface settings.
type Canvas struct {
	width      int
	height     int
	background string
	shapes     []Shape
}

// NewCanvas creates an empty white canvas, clamping the size to the
// supported range.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:      clamp(width, MinWidth, MaxWidth),
		height:     clamp(height, MinHeight, MaxHeight),
		background: "#ffffff",
	}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Resize changes the canvas dimensions, clamped. Shapes are kept; anything
// now out of bounds is simply cropped at render time.
func (c *Canvas) Resize(width, height int) {
	c.width = clamp(width, MinWidth, MaxWidth)
	c.height = clamp(height, MinHeight, MaxHeight)
}

// SetBackground sets the background color as a #rrggbb hex string.
func (c *Canvas) SetBackground(hex string) error {
	if _, err := parseHex(hex); err != nil {
		return err
	}
	c.background = hex
	return nil
}

// Add validates and appends a shape.
func (c *Canvas) Add(s Shape) error {
	switch s.Mode {
	case ModeFreedraw:
		if len(s.Points) < 1 {
			return fmt.Errorf("freedraw needs at least one point")
		}
	case ModeLine, ModeRect, ModeCircle:
		if len(s.Points) != 2 {
			return fmt.Errorf("%s needs exactly two points", s.Mode)
		}
	default:
		return fmt.Errorf("unknown drawing mode %q", s.Mode)
	}

	if s.StrokeWidth <= 0 {
		s.StrokeWidth = DefaultStrokeWidth
	}
	if s.StrokeWidth > MaxStrokeWidth {
		s.StrokeWidth = MaxStrokeWidth
	}
	if s.StrokeColor == "" {
		s.StrokeColor = "#000000"
	}
	if _, err := parseHex(s.StrokeColor); err != nil {
		return err
	}
	if s.FillColor != "" {
		if _, err := parseHex(s.FillColor); err != nil {
			return err
		}
	}

	c.shapes = append(c.shapes, s)
	return nil
}

// Shapes returns the drawn shapes, oldest first.
func (c *Canvas) Shapes() []Shape {
	return c.shapes
}

// Undo removes the most recent shape. No-op on an empty canvas.
func (c *Canvas) Undo() {
	if len(c.shapes) > 0 {
		c.shapes = c.shapes[:len(c.shapes)-1]
	}
}

// Clear removes every shape. Size and background survive; only an explicit
// clear empties the canvas, toggling away from the tool never does.
func (c *Canvas) Clear() {
	c.shapes = nil
}

// ExportJSON serializes the canvas with its shape list.
func (c *Canvas) ExportJSON() ([]byte, error) {
	doc := struct {
		Width      int     `json:"width"`
		Height     int     `json:"height"`
		Background string  `json:"background"`
		Shapes     []Shape `json:"shapes"`
	}{c.width, c.height, c.background, c.shapes}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportPNG rasterizes the canvas.
func (c *Canvas) ExportPNG() ([]byte, error) {
	bg, err := parseHex(c.background)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for _, s := range c.shapes {
		stroke, err := parseHex(s.StrokeColor)
		if err != nil {
			return nil, err
		}
		switch s.Mode {
		case ModeFreedraw:
			for i := 1; i < len(s.Points); i++ {
				drawSegment(img, s.Points[i-1], s.Points[i], s.StrokeWidth, stroke)
			}
			if len(s.Points) == 1 {
				drawDot(img, s.Points[0], s.StrokeWidth, stroke)
			}
		case ModeLine:
			drawSegment(img, s.Points[0], s.Points[1], s.StrokeWidth, stroke)
		case ModeRect:
			c.drawRect(img, s, stroke)
		case ModeCircle:
			c.drawCircle(img, s, stroke)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Canvas) drawRect(img *image.RGBA, s Shape, stroke color.Color) {
	r := image.Rect(s.Points[0].X, s.Points[0].Y, s.Points[1].X, s.Points[1].Y)
	if s.FillColor != "" {
		if fill, err := parseHex(s.FillColor); err == nil {
			draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(fill), image.Point{}, draw.Over)
		}
	}
	corners := []Point{
		{r.Min.X, r.Min.Y}, {r.Max.X, r.Min.Y},
		{r.Max.X, r.Max.Y}, {r.Min.X, r.Max.Y},
	}
	for i := range corners {
		drawSegment(img, corners[i], corners[(i+1)%4], s.StrokeWidth, stroke)
	}
}

func (c *Canvas) drawCircle(img *image.RGBA, s Shape, stroke color.Color) {
	center := s.Points[0]
	dx := float64(s.Points[1].X - center.X)
	dy := float64(s.Points[1].Y - center.Y)
	radius := math.Hypot(dx, dy)

	if s.FillColor != "" {
		if fill, err := parseHex(s.FillColor); err == nil {
			r := int(radius)
			for y := -r; y <= r; y++ {
				for x := -r; x <= r; x++ {
					if float64(x*x+y*y) <= radius*radius {
						setPixel(img, center.X+x, center.Y+y, fill)
					}
				}
			}
		}
	}

	// Enough steps that adjacent rim dots overlap at any supported radius.
	steps := int(radius*4) + 16
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		p := Point{
			X: center.X + int(radius*math.Cos(theta)),
			Y: center.Y + int(radius*math.Sin(theta)),
		}
		drawDot(img, p, s.StrokeWidth, stroke)
	}
}

// drawSegment draws a thick line by stamping the brush along the segment.
func drawSegment(img *image.RGBA, a, b Point, width int, col color.Color) {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	steps := int(math.Hypot(dx, dy)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := Point{
			X: a.X + int(t*dx),
			Y: a.Y + int(t*dy),
		}
		drawDot(img, p, width, col)
	}
}

// drawDot stamps a round brush of the given width.
func drawDot(img *image.RGBA, p Point, width int, col color.Color) {
	r := width / 2
	if r < 1 {
		setPixel(img, p.X, p.Y, col)
		return
	}
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				setPixel(img, p.X+x, p.Y+y, col)
			}
		}
	}
}

func setPixel(img *image.RGBA, x, y int, col color.Color) {
	if (image.Point{x, y}).In(img.Bounds()) {
		img.Set(x, y, col)
	}
}

// parseHex parses a #rrggbb color.
func parseHex(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q (want #rrggbb)", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
