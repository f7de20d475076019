package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	SVG  Format = "svg"
)

// DefaultExt is appended to save names given without an extension.
const DefaultExt = ".png"

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".svg":
		return SVG, nil
	case "":
		return "", fmt.Errorf("%s: no file extension", path)
	default:
		return "", fmt.Errorf("%s: unsupported image format %q", path, filepath.Ext(path))
	}
}

// WithDefaultExt appends DefaultExt unless name already ends in a known
// image extension, so my.drawing becomes my.drawing.png.
func WithDefaultExt(name string) string {
	if _, err := FormatFor(name); err != nil {
		return name + DefaultExt
	}
	return name
}

// Encode writes the surface in the given format. Raster formats are all
// lossless.
func Encode(w io.Writer, s *Surface, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, s.Snapshot())
	case BMP:
		return bmp.Encode(w, s.Snapshot())
	case TIFF:
		return tiff.Encode(w, s.Snapshot(), &tiff.Options{Compression: tiff.Deflate})
	case SVG:
		return s.Vector().WriteSVG(w)
	}
	return fmt.Errorf("unsupported image format %q", f)
}

// Save writes the surface to path, choosing the format by extension. A
// failed write removes the partial file.
func Save(path string, s *Surface) (err error) {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	bw := bufio.NewWriter(out)
	if err := Encode(bw, s, f); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return bw.Flush()
}

// Load decodes a PNG, BMP or TIFF file.
func Load(path string) (image.Image, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	r := bufio.NewReader(in)
	var img image.Image
	switch f {
	case PNG:
		img, err = png.Decode(r)
	case BMP:
		img, err = bmp.Decode(r)
	case TIFF:
		img, err = tiff.Decode(r)
	default:
		return nil, fmt.Errorf("%s: cannot load %s drawings", path, f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
