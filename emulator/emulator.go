// Package emulator simulates a FlashBoy programmer with an in-memory flash.
//
// A Device implements device.Transport, so it can back a device.Session
// anywhere real hardware would:
//
//	emu := emulator.New()
//	s, err := device.New(emu)
//	...
//	err = emu.Dump(f) // 2 MiB flash image as programmed
//
// Flash cells behave like NOR flash: erase sets every byte to 0xFF and
// programming can only clear bits.
package emulator

import (
	"errors"
	"fmt"
	"io"

	"github.com/moffa90/go-flashboy/protocol"
	"github.com/moffa90/go-flashboy/rom"
)

// Error codes reported in byte 1 of a failed response.
const (
	// CodeNotProgramming is reported for a chunk written before OpStartProgram
	CodeNotProgramming = 0x01

	// CodeUnknownCommand is reported for an opcode the device does not know
	CodeUnknownCommand = 0x02

	// CodeFlashFull is reported for a chunk written past the end of flash
	CodeFlashFull = 0x03
)

// ErrNoResponse is returned by Read when the device has nothing to answer.
// Real hardware would block instead.
var ErrNoResponse = errors.New("emulator: no response pending")

// Option configures a Device.
type Option func(*Device)

// WithProduct overrides the USB product string. Default is "FlashBoy Plus".
func WithProduct(product string) Option {
	return func(d *Device) {
		d.product = product
	}
}

// WithEraseFailure makes erase answer with a zero echo and the given code.
func WithEraseFailure(code byte) Option {
	return func(d *Device) {
		d.eraseFail = true
		d.eraseCode = code
	}
}

// WithWriteFailure makes the chunk for the given packet index answer with a
// zero echo and the given code.
func WithWriteFailure(packet int, code byte) Option {
	return func(d *Device) {
		d.writeFailAt = packet
		d.writeCode = code
	}
}

// Device is a simulated FlashBoy. It is not safe for concurrent use.
type Device struct {
	product string
	flash   []byte

	programming bool
	next        int // next packet index to program
	payloads    int // payload packets still expected for the current chunk
	chunk       []byte
	pending     [][]byte

	eraseFail   bool
	eraseCode   byte
	writeFailAt int
	writeCode   byte

	erases int
}

// New returns a simulated device with unerased (zeroed) flash.
func New(opts ...Option) *Device {
	d := &Device{
		product:     "FlashBoy Plus",
		flash:       make([]byte, rom.MaxSize),
		chunk:       make([]byte, protocol.ChunkSize),
		writeFailAt: -1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Product returns the USB product string.
func (d *Device) Product() (string, error) {
	return d.product, nil
}

// Write accepts one report with its leading report ID.
func (d *Device) Write(p []byte) (int, error) {
	if len(p) != protocol.PacketSize {
		return 0, fmt.Errorf("emulator: report must be %d bytes, got %d", protocol.PacketSize, len(p))
	}
	report := p[1:]

	if d.payloads > 0 {
		off := (protocol.PayloadsPerChunk - d.payloads) * protocol.PayloadSize
		copy(d.chunk[off:], report)
		d.payloads--
		if d.payloads == 0 {
			d.program()
		}
		return len(p), nil
	}

	switch protocol.Opcode(report[0]) {
	case protocol.OpErase:
		d.erase()
	case protocol.OpStartProgram:
		d.programming = true
		d.next = 0
	case protocol.OpWrite1024:
		d.payloads = protocol.PayloadsPerChunk
	default:
		d.respond(0x00, CodeUnknownCommand)
	}

	return len(p), nil
}

// Read returns the oldest pending response.
func (d *Device) Read(p []byte) (int, error) {
	if len(d.pending) == 0 {
		return 0, ErrNoResponse
	}
	resp := d.pending[0]
	d.pending = d.pending[1:]
	return copy(p, resp), nil
}

// Close is a no-op.
func (d *Device) Close() error {
	return nil
}

// Flash returns a copy of the flash contents.
func (d *Device) Flash() []byte {
	return append([]byte(nil), d.flash...)
}

// Programmed returns the number of chunks programmed since the last erase.
func (d *Device) Programmed() int {
	return d.next
}

// Erases returns the number of successful erase commands.
func (d *Device) Erases() int {
	return d.erases
}

// Dump writes the flash contents to w.
func (d *Device) Dump(w io.Writer) error {
	_, err := w.Write(d.flash)
	return err
}

func (d *Device) erase() {
	if d.eraseFail {
		d.respond(0x00, d.eraseCode)
		return
	}

	for i := range d.flash {
		d.flash[i] = rom.BlankByte
	}
	d.programming = false
	d.next = 0
	d.erases++
	d.respond(byte(protocol.OpErase), 0x00)
}

func (d *Device) program() {
	switch {
	case !d.programming:
		d.respond(0x00, CodeNotProgramming)
		return
	case d.next*protocol.ChunkSize >= len(d.flash):
		d.respond(0x00, CodeFlashFull)
		return
	case d.next == d.writeFailAt:
		d.respond(0x00, d.writeCode)
		return
	}

	dst := d.flash[d.next*protocol.ChunkSize : (d.next+1)*protocol.ChunkSize]
	for i, b := range d.chunk {
		dst[i] &= b
	}
	d.next++
	d.respond(byte(protocol.OpWrite1024), 0x00)
}

func (d *Device) respond(echo, code byte) {
	resp := make([]byte, protocol.PayloadSize)
	resp[protocol.ResponseEchoOffset] = echo
	resp[protocol.ResponseCodeOffset] = code
	d.pending = append(d.pending, resp)
}
