package device

import (
	"fmt"
	"io"
	"strings"

	"github.com/moffa90/go-flashboy/protocol"
	"github.com/moffa90/go-flashboy/usbhid"
)

// Identity identifies one kind of device on the bus.
type Identity struct {
	VendorID  uint16
	ProductID uint16

	// ProductName must appear in the product string. Other devices built on
	// the same microcontroller share the vendor/product IDs.
	ProductName string
}

// FlashBoy is the identity of the FlashBoy Plus programmer.
var FlashBoy = Identity{
	VendorID:    0x1781,
	ProductID:   0x09A2,
	ProductName: "FlashBoy",
}

// Transport is a HID connection to one device.
// Write receives a full protocol.PacketSize report starting with the report
// ID; Read fills p with one input report without report ID.
type Transport interface {
	io.ReadWriter

	// Product returns the USB product string
	Product() (string, error)
}

// Session is an open connection to an identified FlashBoy.
// Session is not safe for concurrent use.
type Session struct {
	t       Transport
	closer  io.Closer
	product string
	resp    []byte
}

// WriteToken is the capability to write chunks. It is issued by
// BeginProgram and is only valid on the session that issued it.
type WriteToken struct {
	s *Session
}

// Open finds the attached FlashBoy and opens a session with it.
// Any failure is reported as a *NotFoundError.
//
// Example:
//
//	s, err := device.Open(usbhid.WithReadTimeout(30 * time.Second))
func Open(opts ...usbhid.Option) (*Session, error) {
	dev, err := usbhid.Open(FlashBoy.VendorID, FlashBoy.ProductID, opts...)
	if err != nil {
		return nil, &NotFoundError{Err: err}
	}

	s, err := New(dev)
	if err != nil {
		_ = dev.Close()
		return nil, err
	}
	s.closer = dev

	return s, nil
}

// New identifies the device behind t and returns a session for it.
// Returns a *NotFoundError if the product string does not name a FlashBoy.
func New(t Transport) (*Session, error) {
	if t == nil {
		return nil, &NotFoundError{Err: fmt.Errorf("transport cannot be nil")}
	}

	product, err := t.Product()
	if err != nil {
		return nil, &NotFoundError{Err: err}
	}

	if !strings.Contains(product, FlashBoy.ProductName) {
		return nil, &NotFoundError{Err: fmt.Errorf("product %q is not a %s", product, FlashBoy.ProductName)}
	}

	return &Session{
		t:       t,
		product: product,
		resp:    make([]byte, protocol.PacketSize),
	}, nil
}

// Product returns the product string read when the session was opened.
func (s *Session) Product() string {
	return s.product
}

// Close closes the transport if the session opened it.
func (s *Session) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// Erase erases the whole flash and waits for the device to acknowledge.
// Blocks for as long as the erase takes.
func (s *Session) Erase() error {
	cmd := protocol.EncodeCommand(protocol.OpErase)
	if err := s.send(&cmd, "write erase command"); err != nil {
		return err
	}

	return s.receive(protocol.OpErase, "read erase response")
}

// BeginProgram switches the device into programming mode and returns the
// token required by WriteChunk. The device does not acknowledge this command.
func (s *Session) BeginProgram() (*WriteToken, error) {
	cmd := protocol.EncodeCommand(protocol.OpStartProgram)
	if err := s.send(&cmd, "write start program command"); err != nil {
		return nil, err
	}

	return &WriteToken{s: s}, nil
}

// WriteChunk programs the next protocol.ChunkSize bytes of flash.
// It sends one OpWrite1024 command followed by protocol.PayloadsPerChunk
// payload packets and validates the single response.
func (s *Session) WriteChunk(tok *WriteToken, chunk []byte) error {
	if tok == nil || tok.s != s {
		return ErrNoWriteToken
	}

	payloads, err := protocol.EncodeChunk(chunk)
	if err != nil {
		return err
	}

	cmd := protocol.EncodeCommand(protocol.OpWrite1024)
	if err := s.send(&cmd, "write chunk command"); err != nil {
		return err
	}

	for i := range payloads {
		if err := s.send(&payloads[i], fmt.Sprintf("write payload %d", i)); err != nil {
			return err
		}
	}

	return s.receive(protocol.OpWrite1024, "read write response")
}

// send writes one packet to the device.
func (s *Session) send(pkt *protocol.Packet, op string) error {
	n, err := s.t.Write(pkt[:])
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if n < protocol.PacketSize {
		return &TransportError{Op: op, Err: io.ErrShortWrite}
	}
	return nil
}

// receive reads one response and checks it acknowledges op.
func (s *Session) receive(op protocol.Opcode, desc string) error {
	clear(s.resp)

	n, err := s.t.Read(s.resp)
	if err != nil {
		return &TransportError{Op: desc, Err: err}
	}
	if n == 0 {
		return &TransportError{Op: desc, Err: io.ErrUnexpectedEOF}
	}

	return protocol.DecodeResponse(s.resp, op)
}
