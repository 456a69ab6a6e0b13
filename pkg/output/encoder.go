// Package output encodes rendered frames and stores them in a blob bucket.
package output

import (
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoder writes one image in a file format
type Encoder struct {
	Ext         string
	ContentType string
	Encode      func(w io.Writer, img image.Image) error
}

var encoders = map[string]Encoder{
	"png":  {Ext: ".png", ContentType: "image/png", Encode: png.Encode},
	"bmp":  {Ext: ".bmp", ContentType: "image/bmp", Encode: bmp.Encode},
	"tiff": {Ext: ".tiff", ContentType: "image/tiff", Encode: encodeTIFF},
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// EncoderFor returns the encoder of a format name
func EncoderFor(format string) (Encoder, error) {
	enc, ok := encoders[format]
	if !ok {
		return Encoder{}, errors.Errorf("unsupported image format %q", format)
	}
	return enc, nil
}
