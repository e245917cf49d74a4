package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hrko/download-icon/pkg/graphics"
)

func main() {
	if err := run("test.png", os.Stdout); err != nil {
		panic(err)
	}
}

func run(path string, stdout io.Writer) error {
	icon := graphics.NewDownloadIcon(512)
	// icon.SetColorsHEX("#111827", "#6366f1")

	if err := icon.SavePNG(path); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Created %s\n", path)
	return nil
}
