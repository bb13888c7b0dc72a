// Package format provides file format detection for worksheet outputs and
// scanned answer sheets.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a file format the tools read or write.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// TeX indicates LaTeX markup (.tex).
	TeX
	// PDF indicates a compiled PDF document.
	PDF
	// HTML indicates an HTML preview.
	HTML
	// YAML indicates an answer key or problem mix file.
	YAML
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// TIFF indicates a TIFF image, the usual output of document scanners.
	TIFF
	// BMP indicates a Windows bitmap.
	BMP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case TeX:
		return "TeX"
	case PDF:
		return "PDF"
	case HTML:
		return "HTML"
	case YAML:
		return "YAML"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case TeX:
		return ".tex"
	case PDF:
		return ".pdf"
	case HTML:
		return ".html"
	case YAML:
		return ".yaml"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tiff"
	case BMP:
		return ".bmp"
	default:
		return ""
	}
}

// IsImage reports whether the format is a raster image.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, TIFF, BMP:
		return true
	default:
		return false
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".tex":
		return TeX
	case ".pdf":
		return PDF
	case ".html", ".htm":
		return HTML
	case ".yaml", ".yml":
		return YAML
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	default:
		return Unknown
	}
}

// DetectFromMagic checks file magic bytes to determine format.
// Text formats other than HTML cannot be recognized this way and yield Unknown.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF")):
		return PDF
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return PNG
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return JPEG
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case bytes.HasPrefix(data, []byte("BM")) && len(data) >= 14:
		return BMP
	case detectHTMLMagic(data):
		return HTML
	default:
		return Unknown
	}
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	upper := strings.ToUpper(string(data[:min(len(data), 512)]))
	return strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML")
}
