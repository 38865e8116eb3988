package protocol

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var allOpcodes = []Opcode{OpErase, OpStartProgram, OpWrite1024}

// buildTestResponse builds a response report as the device sends it.
func buildTestResponse(echo, code byte) []byte {
	resp := make([]byte, PacketSize)
	resp[ResponseEchoOffset] = echo
	resp[ResponseCodeOffset] = code
	return resp
}

func TestDecodeResponseEchoedCommand(t *testing.T) {
	// A loopback device echoes the report it received.
	for _, op := range allOpcodes {
		t.Run(op.String(), func(t *testing.T) {
			cmd := EncodeCommand(op)
			if err := DecodeResponse(cmd.Report(), op); err != nil {
				t.Errorf("DecodeResponse() error = %v", err)
			}
		})
	}
}

func TestDecodeResponseMismatch(t *testing.T) {
	for _, op := range allOpcodes {
		for b := 0; b < 256; b++ {
			if byte(b) == byte(op) {
				continue
			}

			err := DecodeResponse(buildTestResponse(byte(b), 0x07), op)

			var mm *MismatchError
			if !errors.As(err, &mm) {
				t.Fatalf("%s: echo 0x%02X: error = %v, want *MismatchError", op, b, err)
			}
			if mm.Got != byte(b) {
				t.Errorf("%s: Got = 0x%02X, want 0x%02X", op, mm.Got, b)
			}
			if mm.Expected != op {
				t.Errorf("%s: Expected = %v, want %v", op, mm.Expected, op)
			}
			if mm.Code != 0x07 {
				t.Errorf("%s: Code = 0x%02X, want 0x07", op, mm.Code)
			}
		}
	}
}

func TestDecodeResponse(t *testing.T) {
	tests := []struct {
		name     string
		resp     []byte
		expected Opcode
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "erase acknowledged",
			resp:     buildTestResponse(0xA1, 0x00),
			expected: OpErase,
		},
		{
			name:     "write acknowledged",
			resp:     buildTestResponse(0xB4, 0x00),
			expected: OpWrite1024,
		},
		{
			name:     "erase rejected",
			resp:     buildTestResponse(0x00, 0x13),
			expected: OpErase,
			wantErr:  true,
			errMsg:   "after erase command",
		},
		{
			name:     "write rejected",
			resp:     buildTestResponse(0xA1, 0x02),
			expected: OpWrite1024,
			wantErr:  true,
			errMsg:   "after write command",
		},
		{
			name:     "response too short",
			resp:     []byte{0xA1},
			expected: OpErase,
			wantErr:  true,
			errMsg:   "response too short",
		},
		{
			name:     "empty response",
			resp:     nil,
			expected: OpErase,
			wantErr:  true,
			errMsg:   "response too short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DecodeResponse(tt.resp, tt.expected)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error = %v, want substring %q", err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestMismatchError(t *testing.T) {
	err := &MismatchError{Expected: OpWrite1024, Got: 0x00, Code: 0x3C}
	msg := err.Error()

	for _, want := range []string{"write command", "0x00", "0xB4", "0x3C"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message should contain %q, got: %s", want, msg)
		}
	}

	wrapped := fmt.Errorf("write packet 12: %w", err)
	if !IsMismatchError(wrapped) {
		t.Error("IsMismatchError(wrapped) = false, want true")
	}
	if IsMismatchError(errors.New("other")) {
		t.Error("IsMismatchError(other) = true, want false")
	}
}
