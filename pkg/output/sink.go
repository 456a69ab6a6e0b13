package output

import (
	"context"
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob" // mem:// locations
)

// Sink writes frames as objects in a bucket, one key per frame index
type Sink struct {
	bucket  *blob.Bucket
	pattern string
	encoder Encoder
}

// OpenSink opens the bucket behind location. A location with a URL scheme
// (file://, mem://) goes through the blob URL mux; anything else is a local
// directory, created on first write.
func OpenSink(ctx context.Context, location, pattern, format string) (*Sink, error) {
	var bucket *blob.Bucket
	var err error
	if strings.Contains(location, "://") {
		bucket, err = blob.OpenBucket(ctx, location)
	} else {
		bucket, err = fileblob.OpenBucket(location, &fileblob.Options{CreateDir: true})
	}
	if err != nil {
		return nil, errors.Wrapf(err, "opening output %s", location)
	}

	sink, err := NewSink(bucket, pattern, format)
	if err != nil {
		bucket.Close()
		return nil, err
	}
	return sink, nil
}

// NewSink wraps an open bucket. The sink owns the bucket and closes it.
func NewSink(bucket *blob.Bucket, pattern, format string) (*Sink, error) {
	enc, err := EncoderFor(format)
	if err != nil {
		return nil, err
	}
	return &Sink{bucket: bucket, pattern: pattern, encoder: enc}, nil
}

// Key returns the object key of frame index. The pattern's extension is
// replaced when it does not match the format.
func (s *Sink) Key(index int) string {
	key := fmt.Sprintf(s.pattern, index)
	if ext := path.Ext(key); ext != s.encoder.Ext {
		key = strings.TrimSuffix(key, ext) + s.encoder.Ext
	}
	return key
}

// WriteFrame encodes img and stores it under the frame's key. A frame that
// fails to encode is discarded, never stored truncated.
func (s *Sink) WriteFrame(ctx context.Context, index int, img image.Image) (string, error) {
	key := s.Key(index)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: s.encoder.ContentType})
	if err != nil {
		return "", errors.Wrapf(err, "creating %s", key)
	}
	if err := s.encoder.Encode(w, img); err != nil {
		// Cancelling before Close aborts the write
		cancel()
		w.Close()
		return "", errors.Wrapf(err, "encoding %s", key)
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "writing %s", key)
	}
	return key, nil
}

// WriteObject stores raw bytes under key
func (s *Sink) WriteObject(ctx context.Context, key, contentType string, data []byte) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	return errors.Wrapf(err, "writing %s", key)
}

// Close releases the bucket
func (s *Sink) Close() error {
	return s.bucket.Close()
}
