package programmer

import (
	"context"
	"fmt"
	"hash/crc32"
	"io"
	"time"

	"github.com/moffa90/go-flashboy/device"
	"github.com/moffa90/go-flashboy/rom"
)

// Device is the command surface of a FlashBoy session.
// *device.Session implements it.
type Device interface {
	Erase() error
	BeginProgram() (*device.WriteToken, error)
	WriteChunk(tok *device.WriteToken, chunk []byte) error
}

// Result summarizes a completed programming run.
type Result struct {
	// Packets is the number of packets accepted by the device
	Packets int

	// BytesWritten is the number of bytes sent, filler included
	BytesWritten int

	// Relocated reports whether the ROM header was moved to the top of flash
	Relocated bool

	// Checksum is the CRC-32 (IEEE) of the full flash contents as sent
	Checksum uint32

	// Elapsed is the duration of the whole run, erase included
	Elapsed time.Duration
}

// Programmer orchestrates erase and programming of a FlashBoy cartridge.
// The sequence is strictly linear: erase, start program, then every packet
// of the flash address space. The first failure aborts the run.
type Programmer struct {
	device Device
	config Config
}

// New creates a new Programmer for the given device session.
//
// Example:
//
//	s, _ := device.Open()
//	prog := programmer.New(s,
//	    programmer.WithProgressCallback(progressFunc),
//	)
func New(dev Device, opts ...Option) *Programmer {
	if dev == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Programmer{
		device: dev,
		config: cfg,
	}
}

// Program performs the complete programming sequence:
//  1. Erase the flash and wait for the acknowledgement
//  2. Switch the device into programming mode
//  3. Write every packet of the address space, relocating the header of a
//     short image, and report progress after each one
//
// The context is checked between packets; a transfer in progress is not
// interrupted. img is consumed: programming it again requires a fresh Image.
//
// Example:
//
//	img, _ := rom.Open("game.vb")
//	res, err := prog.Program(context.Background(), img)
func (p *Programmer) Program(ctx context.Context, img *rom.Image) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if img.Geometry != rom.FlashBoy {
		return nil, &GeometryError{Got: img.Geometry, Want: rom.FlashBoy}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}

	packets, err := img.Packets()
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	total := img.Geometry.PacketCount

	// Phase 1: Erase
	p.reportProgress(Progress{
		Phase:        PhaseErasing,
		TotalPackets: total,
	})

	p.logDebug("erasing device")
	if err := p.device.Erase(); err != nil {
		p.logError("erase failed", "error", err)
		return nil, fmt.Errorf("erase: %w", err)
	}
	p.logDebug("erase complete", "elapsed", time.Since(startTime).String())

	// Phase 2: Start program
	tok, err := p.device.BeginProgram()
	if err != nil {
		p.logError("start program failed", "error", err)
		return nil, fmt.Errorf("start program: %w", err)
	}

	p.logDebug("programming",
		"size", img.Size,
		"header_packet", img.HeaderPacket(),
		"relocated", img.Relocated(),
	)

	p.reportProgress(Progress{
		Phase:        PhaseProgramming,
		TotalPackets: total,
		ElapsedTime:  time.Since(startTime),
	})

	// Phase 3: Write packets
	buf := make([]byte, img.Geometry.PacketSize)
	sum := crc32.NewIEEE()
	sent := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cancelled after %d packets: %w", sent, err)
		}

		idx, err := packets.Next(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			p.logError("read ROM failed", "error", err)
			return nil, err
		}

		if err := p.device.WriteChunk(tok, buf); err != nil {
			p.logError("write failed", "packet", idx, "error", err)
			return nil, &PacketError{Packet: idx, Err: err}
		}

		_, _ = sum.Write(buf)
		sent++

		p.reportProgress(Progress{
			Phase:         PhaseProgramming,
			CurrentPacket: sent,
			TotalPackets:  total,
			Percentage:    float64(sent) / float64(total) * 100,
			BytesWritten:  sent * len(buf),
			ElapsedTime:   time.Since(startTime),
		})
	}

	res := &Result{
		Packets:      sent,
		BytesWritten: sent * len(buf),
		Relocated:    img.Relocated(),
		Checksum:     sum.Sum32(),
		Elapsed:      time.Since(startTime),
	}

	// Complete
	p.reportProgress(Progress{
		Phase:         PhaseComplete,
		CurrentPacket: sent,
		TotalPackets:  total,
		Percentage:    100,
		BytesWritten:  res.BytesWritten,
		ElapsedTime:   res.Elapsed,
	})

	p.logInfo("programming complete",
		"packets", res.Packets,
		"bytes", res.BytesWritten,
		"crc32", fmt.Sprintf("0x%08X", res.Checksum),
		"elapsed", res.Elapsed.String(),
	)

	return res, nil
}

// reportProgress calls the progress callback if configured.
func (p *Programmer) reportProgress(progress Progress) {
	if p.config.ProgressCallback != nil {
		p.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (p *Programmer) logDebug(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (p *Programmer) logInfo(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (p *Programmer) logError(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Error(msg, keysAndValues...)
	}
}
