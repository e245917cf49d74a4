package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hrko/download-icon/internal/iconset"
)

func main() {
	log.SetPrefix("create-icon: ")

	dir, err := outputDir()
	if err != nil {
		log.Fatalf("Failed to resolve output directory: %v", err)
	}

	g, err := iconset.NewGenerator(newOptions(dir))
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}
	if _, err := g.Run(context.Background()); err != nil {
		log.Fatalf("Failed to create icons: %v", err)
	}

	fmt.Fprintln(os.Stdout, "\nAll icons created successfully!")
}

// newOptions writes the default icon set into dir and nothing else.
func newOptions(dir string) iconset.Options {
	var opts iconset.Options
	opts.SetDefault()
	opts.Dir = dir
	return opts
}

// outputDir returns build/icons of the module, located from this source file
// so the result does not depend on the working directory.
func outputDir() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("source location unavailable")
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "build", "icons"), nil
}
