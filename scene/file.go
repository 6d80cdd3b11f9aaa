// Package scene loads spline networks from TOML scene files
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/rail-walker/spline"
)

var (
	ErrUnknownSpline = errors.New("scene: unknown spline")
	ErrBadPointRef   = errors.New("scene: bad point reference")
	ErrBadConstruct  = errors.New("scene: unknown construct mode")
	ErrNoSpawn       = errors.New("scene: walker spawn spline not set")
)

// File is the decoded form of a scene file
type File struct {
	Walker      Spawn        `toml:"walker"`
	Splines     []SplineSpec `toml:"spline"`
	Links       []LinkSpec   `toml:"link"`
	Transitions []TransSpec  `toml:"transition"`
}

// Spawn places the walker
type Spawn struct {
	Spline  string  `toml:"spline"`
	T       float64 `toml:"t"`
	Reverse bool    `toml:"reverse,omitempty"`
}

type SplineSpec struct {
	Name      string      `toml:"name"`
	Type      string      `toml:"type,omitempty"`
	Loop      bool        `toml:"loop,omitempty"`
	Construct string      `toml:"construct,omitempty"`
	Points    []PointSpec `toml:"point"`
}

// PointSpec is one control point; handles are world-space and optional
type PointSpec struct {
	Position  [3]float64  `toml:"position"`
	Preceding *[3]float64 `toml:"preceding,omitempty"`
	Following *[3]float64 `toml:"following,omitempty"`
	Mode      string      `toml:"mode,omitempty"`
}

// LinkSpec joins two points written "spline:index"
// A missing behavior list means a connection (y, rotation and scale)
type LinkSpec struct {
	From     string   `toml:"from"`
	To       string   `toml:"to"`
	Behavior []string `toml:"behavior,omitempty"`
}

type TransSpec struct {
	Host         string  `toml:"host"`
	Min          float64 `toml:"min"`
	Max          float64 `toml:"max"`
	Key          string  `toml:"key"`
	Contact      int     `toml:"contact"`
	Destination  string  `toml:"destination"`
	DestinationT float64 `toml:"destination_t"`
}

// Decode reads a scene from r; unknown keys are logged and ignored
func Decode(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		spline.Logger().Warn("unknown scene keys ignored", "keys", fmt.Sprint(undec))
	}
	return &f, nil
}

// Load reads and decodes the scene file at path
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Encode writes f as TOML
func Encode(w io.Writer, f *File) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}
	return nil
}
