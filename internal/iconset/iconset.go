package iconset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fufuok/cmap"

	"github.com/hrko/download-icon/pkg/graphics"
)

type Entry struct {
	Name string `json:"file"`
	Size int    `json:"size"`
}

// DefaultEntries returns the icon files expected by the app packager.
// icon.png is the window icon, the NxN.png files are the Linux icon set.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "icon.png", Size: 512},
		{Name: "16x16.png", Size: 16},
		{Name: "24x24.png", Size: 24},
		{Name: "32x32.png", Size: 32},
		{Name: "48x48.png", Size: 48},
		{Name: "64x64.png", Size: 64},
		{Name: "128x128.png", Size: 128},
		{Name: "256x256.png", Size: 256},
		{Name: "512x512.png", Size: 512},
	}
}

type Options struct {
	Entries []Entry
	Dir     string
	Color   struct {
		Background string
		Foreground string
	}
	Manifest string    // file name inside Dir, empty to skip
	Stdout   io.Writer // receives one "Created <path>" line per icon
}

func (o *Options) SetDefault() {
	o.Entries = DefaultEntries()
	o.Dir = "."
	o.Color.Background = "#3b82f6"
	o.Color.Foreground = "#ffffff"
	o.Manifest = ""
	o.Stdout = os.Stdout
}

func (o *Options) validateConfig() error {
	if o.Dir == "" {
		return fmt.Errorf("Dir must not be empty")
	}
	if o.Stdout == nil {
		return fmt.Errorf("Stdout must be set")
	}
	for i, e := range o.Entries {
		if e.Name == "" {
			return fmt.Errorf("entry %d has an empty name", i)
		}
		if filepath.Base(e.Name) != e.Name {
			return fmt.Errorf("entry %q must be a plain file name", e.Name)
		}
	}
	return nil
}

type Generator struct {
	opts     Options
	rendered *cmap.MapOf[string, []byte] // key: DownloadIcon.String()
}

type Result struct {
	Entry
	Path   string `json:"-"`
	SHA256 string `json:"sha256"`
}

func NewGenerator(opts Options) (*Generator, error) {
	if err := opts.validateConfig(); err != nil {
		return nil, err
	}
	return &Generator{
		opts:     opts,
		rendered: cmap.NewOf[string, []byte](),
	}, nil
}

// Run writes every entry in order. The first failure stops the batch.
func (g *Generator) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(g.opts.Entries))
	for _, e := range g.opts.Entries {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		path := filepath.Join(g.opts.Dir, e.Name)
		data, err := g.encode(e.Size)
		if err != nil {
			return results, fmt.Errorf("%s: %w", e.Name, err)
		}
		if err := graphics.WriteFile(path, data); err != nil {
			return results, err
		}
		fmt.Fprintf(g.opts.Stdout, "Created %s\n", path)

		results = append(results, Result{Entry: e, Path: path, SHA256: checksum(data)})
	}

	if g.opts.Manifest != "" {
		path := filepath.Join(g.opts.Dir, g.opts.Manifest)
		if err := writeManifest(path, results); err != nil {
			return results, err
		}
		log.Printf("manifest written to %s", path)
	}

	return results, nil
}

func (g *Generator) encode(size int) ([]byte, error) {
	icon := graphics.NewDownloadIcon(size)
	if err := icon.SetColorsHEX(g.opts.Color.Background, g.opts.Color.Foreground); err != nil {
		return nil, err
	}

	key := icon.String()
	if data, ok := g.rendered.Get(key); ok {
		return data, nil
	}

	img, err := icon.Render()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := graphics.EncodePNG(&buf, img); err != nil {
		return nil, err
	}

	data := buf.Bytes()
	g.rendered.Set(key, data)
	return data, nil
}
