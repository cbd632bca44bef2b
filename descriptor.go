package letterbox

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrDegenerateRatio = errors.New("aspect ratio components must be nonzero")
	ErrUnknownMode     = errors.New("unknown aspect ratio mode")
)

// Dimensions in physical pixels, or cells for terminal hosts.
type Dimensions struct {
	W, H uint32
}

func (d Dimensions) String() string { return fmt.Sprintf("%dx%d", d.W, d.H) }

// Descriptor is the aspect ratio a camera viewport is fitted to.
type Descriptor struct {
	Ratio Dimensions
	Mode  Mode
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%d:%d %s", d.Ratio.W, d.Ratio.H, d.Mode)
}

func (d Descriptor) validate() error {
	if d.Ratio.W == 0 || d.Ratio.H == 0 {
		return fmt.Errorf("%w: %d:%d", ErrDegenerateRatio, d.Ratio.W, d.Ratio.H)
	}
	if !d.Mode.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownMode, d.Mode)
	}
	return nil
}

func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// FromResolution reduces a resolution (e.g. 1920x1080) to its ratio (16:9).
func FromResolution(res Dimensions, mode Mode) (Descriptor, error) {
	if res.W == 0 || res.H == 0 {
		return Descriptor{}, fmt.Errorf("%w: resolution %s", ErrDegenerateRatio, res)
	}

	g := gcd(res.W, res.H)
	return FromRatio(Dimensions{W: res.W / g, H: res.H / g}, mode)
}

// FromRatio stores ratio as given, it is not reduced.
func FromRatio(ratio Dimensions, mode Mode) (Descriptor, error) {
	d := Descriptor{Ratio: ratio, Mode: mode}
	if err := d.validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// ParseDescriptor parses "W:H" as a ratio or "WxH" as a resolution.
func ParseDescriptor(s string, mode Mode) (Descriptor, error) {
	s = strings.TrimSpace(s)
	if w, h, ok := strings.Cut(s, ":"); ok {
		dim, err := parseDimensions(w, h)
		if err != nil {
			return Descriptor{}, fmt.Errorf("invalid ratio '%s': %w", s, err)
		}
		return FromRatio(dim, mode)
	}

	if w, h, ok := strings.Cut(strings.ToLower(s), "x"); ok {
		dim, err := parseDimensions(w, h)
		if err != nil {
			return Descriptor{}, fmt.Errorf("invalid resolution '%s': %w", s, err)
		}
		return FromResolution(dim, mode)
	}

	return Descriptor{}, fmt.Errorf("'%s' is neither a W:H ratio nor a WxH resolution", s)
}

func parseDimensions(w, h string) (Dimensions, error) {
	pw, err := strconv.ParseUint(strings.TrimSpace(w), 10, 32)
	if err != nil {
		return Dimensions{}, err
	}
	ph, err := strconv.ParseUint(strings.TrimSpace(h), 10, 32)
	if err != nil {
		return Dimensions{}, err
	}

	return Dimensions{W: uint32(pw), H: uint32(ph)}, nil
}
