package rom

import (
	"fmt"
	"io"
	"os"
)

// Open opens a ROM image file and validates its size against the FlashBoy
// geometry. The caller must Close the returned image.
//
// Example:
//
//	img, err := rom.Open("game.vb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer img.Close()
func Open(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ROM: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat ROM: %w", err)
	}

	img, err := NewImage(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	img.closer = f

	return img, nil
}

// NewImage wraps a byte source of known length as a FlashBoy ROM image.
// This is useful for testing and reading from non-file sources.
//
// Example:
//
//	data := bytes.NewReader(romBytes)
//	img, err := rom.NewImage(data, int64(len(romBytes)))
func NewImage(r io.Reader, size int64) (*Image, error) {
	return NewImageWithGeometry(r, size, FlashBoy)
}

// NewImageWithGeometry is like NewImage but lays the image out over g.
func NewImageWithGeometry(r io.Reader, size int64, g Geometry) (*Image, error) {
	if r == nil {
		return nil, fmt.Errorf("ROM source cannot be nil")
	}
	if g.HeaderLen <= 0 || g.HeaderLen > g.PacketSize {
		return nil, fmt.Errorf("invalid geometry: header length %d does not fit in a %d-byte packet",
			g.HeaderLen, g.PacketSize)
	}

	if err := g.Validate(size); err != nil {
		return nil, err
	}

	return &Image{
		Size:     size,
		Geometry: g,
		r:        r,
	}, nil
}
