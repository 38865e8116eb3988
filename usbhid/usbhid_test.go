package usbhid

import (
	"bytes"
	"testing"
	"time"
)

func TestSplitReport(t *testing.T) {
	tests := []struct {
		name     string
		report   []byte
		wantID   byte
		wantData []byte
	}{
		{
			name:     "zero report ID is stripped",
			report:   []byte{0x00, 0xA1, 0x00, 0x00},
			wantID:   0x00,
			wantData: []byte{0xA1, 0x00, 0x00},
		},
		{
			name:     "non-zero report ID is sent",
			report:   []byte{0x02, 0xA1, 0x00},
			wantID:   0x02,
			wantData: []byte{0x02, 0xA1, 0x00},
		},
		{
			name:     "report ID only",
			report:   []byte{0x00},
			wantID:   0x00,
			wantData: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, data := splitReport(tt.report)
			if id != tt.wantID {
				t.Errorf("report ID = 0x%02X, want 0x%02X", id, tt.wantID)
			}
			if !bytes.Equal(data, tt.wantData) {
				t.Errorf("data = %X, want %X", data, tt.wantData)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	c := defaultConfig()
	if c.readTimeout != 0 || c.writeTimeout != 0 {
		t.Errorf("default timeouts = %v/%v, want blocking", c.readTimeout, c.writeTimeout)
	}

	for _, opt := range []Option{
		WithReadTimeout(2 * time.Second),
		WithWriteTimeout(time.Second),
		WithInterface(1),
		WithReadTimeout(-1),
		WithInterface(-3),
	} {
		opt(&c)
	}

	if c.readTimeout != 2*time.Second {
		t.Errorf("readTimeout = %v, want 2s", c.readTimeout)
	}
	if c.writeTimeout != time.Second {
		t.Errorf("writeTimeout = %v, want 1s", c.writeTimeout)
	}
	if c.iface != 1 {
		t.Errorf("iface = %d, want 1", c.iface)
	}
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := withTimeout(0)
	if _, ok := ctx.Deadline(); ok {
		t.Error("zero timeout should not set a deadline")
	}
	cancel()

	ctx, cancel = withTimeout(time.Minute)
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Error("positive timeout should set a deadline")
	}
}
