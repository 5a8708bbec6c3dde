package kernel

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Paths of the built-in kernel images. Any path with the BuiltinDir prefix
// is resolved against the images compiled into the binary.
const (
	BuiltinDir   = "kernels/"
	AddPath      = BuiltinDir + "modadd.dpu.yaml"
	MulPath      = BuiltinDir + "modmul.dpu.yaml"
	IdentityPath = BuiltinDir + "identity.dpu.yaml"
)

//go:embed images/*.yaml
var builtinImages embed.FS

// ErrInvalidImage is returned when a kernel image cannot run on a unit.
var ErrInvalidImage = errors.New("invalid kernel image")

// Image is a kernel binary as seen by the host. It names the lane operation
// and the resources the kernel needs on the unit.
type Image struct {
	Name           string `yaml:"name"`
	Op             string `yaml:"op"`
	WindowBytes    int    `yaml:"window_bytes"`
	ScratchBuffers int    `yaml:"scratch_buffers"`
	CyclesPerLane  int    `yaml:"cycles_per_lane"`
}

// LoadImage reads the kernel image at p.
func LoadImage(p string) (*Image, error) {
	var (
		data []byte
		err  error
	)

	if strings.HasPrefix(p, BuiltinDir) {
		data, err = builtinImages.ReadFile(
			"images/" + path.Base(p))
	} else {
		data, err = os.ReadFile(p)
	}

	if err != nil {
		return nil, fmt.Errorf("read kernel image %s: %w", p, err)
	}

	img, err := ParseImage(data)
	if err != nil {
		return nil, fmt.Errorf("kernel image %s: %w", p, err)
	}

	return img, nil
}

// ParseImage decodes and validates a YAML kernel image.
func ParseImage(data []byte) (*Image, error) {
	img := &Image{
		WindowBytes:    DefaultWindowBytes,
		ScratchBuffers: 2,
		CyclesPerLane:  1,
	}

	if err := yaml.Unmarshal(data, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	if err := img.Validate(); err != nil {
		return nil, err
	}

	return img, nil
}

// Validate checks that the image fits the scratch budget and the DMA rules.
func (img *Image) Validate() error {
	if _, ok := Lookup(img.Op); !ok {
		return fmt.Errorf("%w: unknown op %q", ErrInvalidImage, img.Op)
	}

	if img.WindowBytes <= 0 ||
		img.WindowBytes%DMAAlignment != 0 ||
		img.WindowBytes%WordBytes != 0 {
		return fmt.Errorf("%w: window of %d bytes is not DMA aligned",
			ErrInvalidImage, img.WindowBytes)
	}

	if img.ScratchBuffers < 2 {
		return fmt.Errorf("%w: need 2 scratch buffers, got %d",
			ErrInvalidImage, img.ScratchBuffers)
	}

	if img.ScratchBuffers*img.WindowBytes > ScratchBytes {
		return fmt.Errorf("%w: %d x %d bytes exceeds %d bytes of scratch",
			ErrInvalidImage, img.ScratchBuffers, img.WindowBytes, ScratchBytes)
	}

	if img.CyclesPerLane <= 0 {
		return fmt.Errorf("%w: cycles_per_lane must be positive",
			ErrInvalidImage)
	}

	return nil
}

// Window returns the streaming window the image runs with.
func (img *Image) Window() Window {
	lane, _ := Lookup(img.Op)
	return NewWindow(img.WindowBytes, lane)
}
