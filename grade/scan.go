package grade

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	// Registered decoders for image.Decode
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"github.com/tsawler/mathsheet/format"
)

// MinScanWidth is the width below which scans are upscaled before OCR.
// Tesseract reads small digits poorly.
const MinScanWidth = 1600

// LoadScan reads an image file and returns it PNG encoded, upscaled when
// narrower than MinScanWidth.
func LoadScan(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scan: %w", err)
	}
	return PrepareScan(data, path)
}

// PrepareScan converts image data to PNG for OCR. name is used for format
// detection when the data's magic bytes are not recognized.
func PrepareScan(data []byte, name string) ([]byte, error) {
	f := format.DetectFromMagic(data)
	if f == format.Unknown {
		f = format.Detect(name)
	}
	if !f.IsImage() {
		return nil, fmt.Errorf("%s: unsupported scan format %s", name, f)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s scan: %w", f, err)
	}
	img = upscale(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding scan: %w", err)
	}
	return buf.Bytes(), nil
}

func upscale(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dx() >= MinScanWidth {
		return img
	}
	factor := (MinScanWidth + b.Dx() - 1) / b.Dx()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
