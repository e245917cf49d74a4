package graphics

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

var ErrInvalidSize = errors.New("icon size must be greater than 0")

// DownloadIcon draws a rounded square with a downward arrow over a baseline.
// All measurements are derived from Size, so every size renders the same glyph.
type DownloadIcon struct {
	Color struct {
		Background color.Color
		Foreground color.Color
	}
	Size int
}

// DownloadIconGeometry holds the pixel measurements of a DownloadIcon.
// Spans are inclusive on both ends.
type DownloadIconGeometry struct {
	Size              int
	Margin            int
	CornerRadius      int
	ArrowWidth        int
	ArrowStartY       int
	ArrowEndY         int
	CenterX           int
	ShaftHalfWidth    int
	BaselineInset     int
	BaselineOffset    int
	BaselineThickness int
}

func NewDownloadIcon(size int) *DownloadIcon {
	d := &DownloadIcon{}
	d.Color.Background = color.RGBA{R: 59, G: 130, B: 246, A: 0xff}
	d.Color.Foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	d.Size = size
	return d
}

func NewDownloadIconGeometry(size int) DownloadIconGeometry {
	return DownloadIconGeometry{
		Size:              size,
		Margin:            size / 8,
		CornerRadius:      size / 6,
		ArrowWidth:        size / 3,
		ArrowStartY:       size / 3,
		ArrowEndY:         size * 2 / 3,
		CenterX:           size / 2,
		ShaftHalfWidth:    size / 12,
		BaselineInset:     size / 8,
		BaselineOffset:    size / 20,
		BaselineThickness: size / 24,
	}
}

// Background returns the pixels covered by the rounded square, ignoring the corners.
func (g DownloadIconGeometry) Background() image.Rectangle {
	return inclusiveRect(g.Margin, g.Margin, g.Size-g.Margin, g.Size-g.Margin)
}

func (g DownloadIconGeometry) Shaft() image.Rectangle {
	return inclusiveRect(
		g.CenterX-g.ShaftHalfWidth, g.ArrowStartY,
		g.CenterX+g.ShaftHalfWidth, g.ArrowEndY-g.ArrowWidth/2,
	)
}

// ArrowHead returns the apex followed by the left and right base vertices.
func (g DownloadIconGeometry) ArrowHead() [3]image.Point {
	baseY := g.ArrowEndY - g.ArrowWidth/2
	return [3]image.Point{
		{X: g.CenterX, Y: g.ArrowEndY},
		{X: g.CenterX - g.ArrowWidth/2, Y: baseY},
		{X: g.CenterX + g.ArrowWidth/2, Y: baseY},
	}
}

func (g DownloadIconGeometry) Baseline() image.Rectangle {
	y := g.ArrowEndY + g.BaselineOffset
	return inclusiveRect(
		g.Margin+g.BaselineInset, y,
		g.Size-g.Margin-g.BaselineInset, y+g.BaselineThickness,
	)
}

func (d *DownloadIcon) Geometry() DownloadIconGeometry {
	return NewDownloadIconGeometry(d.Size)
}

func (d *DownloadIcon) String() string {
	return fmt.Sprintf("%d-%s-%s", d.Size, colorKey(d.Color.Background), colorKey(d.Color.Foreground))
}

// Render draws the icon with exactly three pixel values: transparent, the
// background color and the foreground color. Each shape is rasterized into a
// coverage mask and a pixel belongs to the shape when at least half of it is
// covered, so curves and diagonals get hard edges.
func (d *DownloadIcon) Render() (image.Image, error) {
	if err := d.validateConfig(); err != nil {
		return nil, err
	}

	g := d.Geometry()

	bgMask := coverageMask(d.Size, func(c *gg.Context) {
		bg := g.Background()
		c.DrawRoundedRectangle(float64(bg.Min.X), float64(bg.Min.Y), float64(bg.Dx()), float64(bg.Dy()), float64(g.CornerRadius))
		c.Fill()
	})

	glyphMask := coverageMask(d.Size, func(c *gg.Context) {
		// arrow shaft
		drawRect(c, g.Shaft())
		c.Fill()

		// arrow head
		head := g.ArrowHead()
		c.MoveTo(pixelCenter(head[0]))
		c.LineTo(pixelCenter(head[1]))
		c.LineTo(pixelCenter(head[2]))
		c.ClosePath()
		c.Fill()

		// baseline
		drawRect(c, g.Baseline())
		c.Fill()
	})

	c := gg.NewContext(d.Size, d.Size)
	if err := fillMask(c, bgMask, d.Color.Background); err != nil {
		return nil, err
	}
	if err := fillMask(c, glyphMask, d.Color.Foreground); err != nil {
		return nil, err
	}

	return c.Image(), nil
}

// SavePNG renders the icon and writes it to path, replacing any existing file.
// The destination is left untouched when rendering or encoding fails.
func (d *DownloadIcon) SavePNG(path string) error {
	img, err := d.Render()
	if err != nil {
		return err
	}
	return SaveImagePNG(path, img)
}

// SaveImagePNG encodes img in memory before opening path.
func SaveImagePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return err
	}
	return WriteFile(path, buf.Bytes())
}

func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WriteFile creates or truncates path and writes data to it.
func WriteFile(path string, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (d *DownloadIcon) validateConfig() error {
	if d.Size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, d.Size)
	}
	if d.Color.Background == nil || d.Color.Foreground == nil {
		return fmt.Errorf("Color.Background and Color.Foreground must be set")
	}
	return nil
}

func inclusiveRect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1+1, y1+1)
}

// coverageMask rasterizes the shapes drawn by draw and keeps the pixels that
// are at least half covered.
func coverageMask(size int, draw func(c *gg.Context)) *image.Alpha {
	c := gg.NewContext(size, size)
	c.SetColor(color.White)
	draw(c)

	mask := c.AsMask()
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
	return mask
}

func fillMask(c *gg.Context, mask *image.Alpha, col color.Color) error {
	if err := c.SetMask(mask); err != nil {
		return err
	}
	c.DrawRectangle(0, 0, float64(c.Width()), float64(c.Height()))
	c.SetColor(col)
	c.Fill()
	return nil
}

func drawRect(c *gg.Context, r image.Rectangle) {
	c.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}

func pixelCenter(p image.Point) (float64, float64) {
	return float64(p.X) + 0.5, float64(p.Y) + 0.5
}
