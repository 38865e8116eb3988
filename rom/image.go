package rom

import "io"

// Image is a validated ROM image read sequentially from a byte source.
// An Image is consumed by a single pass of its Relocator.
type Image struct {
	// Size is the image length in bytes
	Size int64

	// Geometry is the flash address space the image is laid out over
	Geometry Geometry

	r        io.Reader
	closer   io.Closer
	consumed bool
}

// HeaderPacket returns the index of the packet carrying the image header.
func (img *Image) HeaderPacket() int {
	return img.Geometry.HeaderPacket(img.Size)
}

// Relocated reports whether the header is moved to the top of the address space.
func (img *Image) Relocated() bool {
	return img.HeaderPacket() != img.Geometry.LastPacket()
}

// Packets returns a Relocator streaming the image as it must appear in flash.
// The source is read once; a second call returns ErrConsumed.
func (img *Image) Packets() (*Relocator, error) {
	if img.consumed {
		return nil, ErrConsumed
	}
	img.consumed = true
	return &Relocator{img: img}, nil
}

// Close releases the underlying file, if any.
func (img *Image) Close() error {
	if img.closer == nil {
		return nil
	}
	return img.closer.Close()
}
