package programmer

import (
	"errors"
	"strings"
	"testing"

	"github.com/moffa90/go-flashboy/protocol"
	"github.com/moffa90/go-flashboy/rom"
)

func TestPacketError(t *testing.T) {
	cause := &protocol.MismatchError{Expected: protocol.OpWrite1024, Got: 0x00, Code: 0x44}
	err := &PacketError{Packet: 31, Err: cause}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "packet 31") {
		t.Errorf("error message should contain packet index, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "0x44") {
		t.Errorf("error message should contain device code, got: %s", errMsg)
	}

	var mm *protocol.MismatchError
	if !errors.As(err, &mm) {
		t.Error("cause not reachable through Unwrap")
	}
}

func TestGeometryError(t *testing.T) {
	err := &GeometryError{
		Got:  rom.Geometry{PacketSize: 1024, PacketCount: 4096, HeaderLen: 544, MinSize: rom.MinSize},
		Want: rom.FlashBoy,
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "4096") {
		t.Errorf("error message should contain image packet count, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "2048") {
		t.Errorf("error message should contain device packet count, got: %s", errMsg)
	}
}
