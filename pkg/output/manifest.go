package output

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ManifestKey is the object key of the run manifest
const ManifestKey = "manifest.yaml"

// FrameEntry records one stored frame
type FrameEntry struct {
	Index    int           `yaml:"index"`
	Key      string        `yaml:"key"`
	Duration time.Duration `yaml:"duration"`
	Passes   int           `yaml:"passes"`
}

// Manifest describes a finished run
type Manifest struct {
	Run     string       `yaml:"run"`
	Started time.Time    `yaml:"started"`
	Scene   string       `yaml:"scene"`
	Config  any          `yaml:"config"`
	Frames  []FrameEntry `yaml:"frames"`
	GIF     string       `yaml:"gif,omitempty"`
}

// WriteManifest stores m as YAML under ManifestKey
func (s *Sink) WriteManifest(ctx context.Context, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "encoding manifest")
	}
	return s.WriteObject(ctx, ManifestKey, "application/yaml", data)
}
