package emulator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/moffa90/go-flashboy/device"
	"github.com/moffa90/go-flashboy/protocol"
	"github.com/moffa90/go-flashboy/rom"
)

func TestIdentifiesAsFlashBoy(t *testing.T) {
	if _, err := device.New(New()); err != nil {
		t.Fatalf("device.New(emulator) error = %v", err)
	}

	_, err := device.New(New(WithProduct("Atmel HID Demo")))
	if !errors.Is(err, device.ErrNotFound) {
		t.Fatalf("error = %v, want device.ErrNotFound", err)
	}
}

func TestEraseAndProgram(t *testing.T) {
	emu := New()
	s, err := device.New(emu)
	if err != nil {
		t.Fatalf("device.New() error = %v", err)
	}

	if err := s.Erase(); err != nil {
		t.Fatalf("Erase() error = %v", err)
	}
	if !bytes.Equal(emu.Flash(), bytes.Repeat([]byte{rom.BlankByte}, rom.MaxSize)) {
		t.Fatal("flash not blank after erase")
	}

	tok, err := s.BeginProgram()
	if err != nil {
		t.Fatalf("BeginProgram() error = %v", err)
	}

	chunk := bytes.Repeat([]byte{0x12, 0x34}, protocol.ChunkSize/2)
	for i := 0; i < 3; i++ {
		if err := s.WriteChunk(tok, chunk); err != nil {
			t.Fatalf("WriteChunk(%d) error = %v", i, err)
		}
	}

	if emu.Programmed() != 3 {
		t.Errorf("Programmed() = %d, want 3", emu.Programmed())
	}
	flash := emu.Flash()
	if !bytes.Equal(flash[2*protocol.ChunkSize:3*protocol.ChunkSize], chunk) {
		t.Error("third chunk not programmed")
	}
	if flash[3*protocol.ChunkSize] != rom.BlankByte {
		t.Error("flash past the last chunk is not blank")
	}
}

func TestWriteWithoutStartProgram(t *testing.T) {
	emu := New()
	cmd := protocol.EncodeCommand(protocol.OpWrite1024)
	if _, err := emu.Write(cmd[:]); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	pkts, err := protocol.EncodeChunk(make([]byte, protocol.ChunkSize))
	if err != nil {
		t.Fatalf("EncodeChunk() error = %v", err)
	}
	for i := range pkts {
		if _, err := emu.Write(pkts[i][:]); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}

	resp := make([]byte, protocol.PacketSize)
	if _, err := emu.Read(resp); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	var mm *protocol.MismatchError
	if !errors.As(protocol.DecodeResponse(resp, protocol.OpWrite1024), &mm) {
		t.Fatal("chunk before start program was acknowledged")
	}
	if mm.Code != CodeNotProgramming {
		t.Errorf("Code = 0x%02X, want 0x%02X", mm.Code, CodeNotProgramming)
	}
}

func TestUnknownCommand(t *testing.T) {
	emu := New()
	cmd := protocol.EncodeCommand(protocol.Opcode(0x42))
	if _, err := emu.Write(cmd[:]); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	resp := make([]byte, protocol.PacketSize)
	if _, err := emu.Read(resp); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if resp[1] != CodeUnknownCommand {
		t.Errorf("code = 0x%02X, want 0x%02X", resp[1], CodeUnknownCommand)
	}
}

func TestFaultInjection(t *testing.T) {
	t.Run("erase failure", func(t *testing.T) {
		s, err := device.New(New(WithEraseFailure(0x77)))
		if err != nil {
			t.Fatalf("device.New() error = %v", err)
		}

		var mm *protocol.MismatchError
		if !errors.As(s.Erase(), &mm) || mm.Code != 0x77 {
			t.Fatalf("Erase() mismatch = %+v, want code 0x77", mm)
		}
	})

	t.Run("write failure", func(t *testing.T) {
		emu := New(WithWriteFailure(1, 0x66))
		s, err := device.New(emu)
		if err != nil {
			t.Fatalf("device.New() error = %v", err)
		}
		if err := s.Erase(); err != nil {
			t.Fatalf("Erase() error = %v", err)
		}
		tok, _ := s.BeginProgram()

		chunk := make([]byte, protocol.ChunkSize)
		if err := s.WriteChunk(tok, chunk); err != nil {
			t.Fatalf("first chunk error = %v", err)
		}

		var mm *protocol.MismatchError
		if !errors.As(s.WriteChunk(tok, chunk), &mm) || mm.Code != 0x66 {
			t.Fatalf("second chunk mismatch = %+v, want code 0x66", mm)
		}
	})
}

func TestReadWithoutResponse(t *testing.T) {
	if _, err := New().Read(make([]byte, protocol.PacketSize)); !errors.Is(err, ErrNoResponse) {
		t.Fatalf("error = %v, want ErrNoResponse", err)
	}
}

func TestWriteRejectsShortReport(t *testing.T) {
	if _, err := New().Write(make([]byte, 64)); err == nil {
		t.Fatal("expected error for a 64-byte report")
	}
}

func TestDump(t *testing.T) {
	emu := New()
	var buf bytes.Buffer
	if err := emu.Dump(&buf); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if buf.Len() != rom.MaxSize {
		t.Errorf("dump is %d bytes, want %d", buf.Len(), rom.MaxSize)
	}
}
