// Package usbhid is a minimal HID transport built on libusb.
//
// It opens one device by vendor/product ID, claims its HID interface and
// exchanges fixed-size reports over the interrupt endpoints. Outgoing reports
// use the hidapi convention: the first byte of a write is the report ID and
// is not sent on the wire when it is zero.
package usbhid

import (
	"context"
	"time"

	"github.com/google/gousb"
	"github.com/pkg/errors"
)

// HID class requests and report types.
const (
	hidClassOut         = 0x21 // host to device, class, interface
	hidSetReport        = 0x09
	hidReportTypeOutput = 0x02
)

// ErrNoDevice is returned when no device with the requested IDs is attached.
var ErrNoDevice = errors.New("no matching USB device")

type config struct {
	readTimeout  time.Duration
	writeTimeout time.Duration
	iface        int
}

func defaultConfig() config {
	return config{iface: 0}
}

// Option configures Open.
type Option func(*config)

// WithReadTimeout bounds every report read. Zero blocks until the device answers.
func WithReadTimeout(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.readTimeout = d
		}
	}
}

// WithWriteTimeout bounds every report write. Zero blocks until the transfer completes.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.writeTimeout = d
		}
	}
}

// WithInterface selects the HID interface number to claim. Default is 0.
func WithInterface(num int) Option {
	return func(c *config) {
		if num >= 0 {
			c.iface = num
		}
	}
}

// Device is an open HID interface. It implements io.ReadWriteCloser.
// Device is not safe for concurrent use.
type Device struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	in   *gousb.InEndpoint
	out  *gousb.OutEndpoint // nil: reports go through SET_REPORT on the control pipe

	inBuf []byte
	conf  config
}

// Open opens the first device matching vid:pid and claims its HID interface.
func Open(vid, pid uint16, opts ...Option) (*Device, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	d := &Device{ctx: gousb.NewContext(), conf: c}

	dev, err := d.ctx.OpenDeviceWithVIDPID(gousb.ID(vid), gousb.ID(pid))
	if err != nil {
		_ = d.Close()
		return nil, errors.Wrapf(err, "open %04x:%04x", vid, pid)
	}
	if dev == nil {
		_ = d.Close()
		return nil, errors.Wrapf(ErrNoDevice, "%04x:%04x", vid, pid)
	}
	d.dev = dev

	if err := dev.SetAutoDetach(true); err != nil {
		_ = d.Close()
		return nil, errors.Wrap(err, "enable kernel driver auto-detach")
	}

	cfgNum, err := dev.ActiveConfigNum()
	if err != nil {
		_ = d.Close()
		return nil, errors.Wrap(err, "get active configuration")
	}

	d.cfg, err = dev.Config(cfgNum)
	if err != nil {
		_ = d.Close()
		return nil, errors.Wrapf(err, "claim configuration %d", cfgNum)
	}

	d.intf, err = d.cfg.Interface(c.iface, 0)
	if err != nil {
		_ = d.Close()
		return nil, errors.Wrapf(err, "claim interface %d", c.iface)
	}

	if err := d.openEndpoints(); err != nil {
		_ = d.Close()
		return nil, err
	}

	return d, nil
}

// openEndpoints picks the interrupt IN and OUT endpoints of the claimed interface.
func (d *Device) openEndpoints() error {
	for _, ep := range d.intf.Setting.Endpoints {
		if ep.TransferType != gousb.TransferTypeInterrupt {
			continue
		}

		var err error
		switch {
		case ep.Direction == gousb.EndpointDirectionIn && d.in == nil:
			d.in, err = d.intf.InEndpoint(ep.Number)
		case ep.Direction == gousb.EndpointDirectionOut && d.out == nil:
			d.out, err = d.intf.OutEndpoint(ep.Number)
		}
		if err != nil {
			return errors.Wrapf(err, "open endpoint %v", ep.Address)
		}
	}

	if d.in == nil {
		return errors.Errorf("interface %d has no interrupt IN endpoint", d.conf.iface)
	}

	d.inBuf = make([]byte, d.in.Desc.MaxPacketSize)
	return nil
}

// Product returns the device product string.
func (d *Device) Product() (string, error) {
	s, err := d.dev.Product()
	if err != nil {
		return "", errors.Wrap(err, "read product string")
	}
	return s, nil
}

// Read reads one input report into p. The report ID is not included.
func (d *Device) Read(p []byte) (int, error) {
	ctx, cancel := withTimeout(d.conf.readTimeout)
	defer cancel()

	n, err := d.in.ReadContext(ctx, d.inBuf)
	if err != nil {
		return 0, errors.Wrap(err, "interrupt read")
	}

	return copy(p, d.inBuf[:n]), nil
}

// Write sends p as one output report. p[0] is the report ID.
// Returns len(p) on success.
func (d *Device) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, errors.New("empty report")
	}

	reportID, data := splitReport(p)

	if d.out == nil {
		_, err := d.dev.Control(
			hidClassOut,
			hidSetReport,
			uint16(hidReportTypeOutput)<<8|uint16(reportID),
			uint16(d.conf.iface),
			data,
		)
		if err != nil {
			return 0, errors.Wrap(err, "set report")
		}
		return len(p), nil
	}

	ctx, cancel := withTimeout(d.conf.writeTimeout)
	defer cancel()

	n, err := d.out.WriteContext(ctx, data)
	if err != nil {
		return 0, errors.Wrap(err, "interrupt write")
	}
	if n != len(data) {
		return 0, errors.Errorf("short interrupt write: %d of %d bytes", n, len(data))
	}

	return len(p), nil
}

// Close releases everything Open acquired.
func (d *Device) Close() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if d.intf != nil {
		d.intf.Close()
		d.intf = nil
	}
	if d.cfg != nil {
		keep(d.cfg.Close())
		d.cfg = nil
	}
	if d.dev != nil {
		keep(d.dev.Close())
		d.dev = nil
	}
	if d.ctx != nil {
		keep(d.ctx.Close())
		d.ctx = nil
	}

	return firstErr
}

// splitReport separates the report ID from the report data.
// A zero report ID is not transmitted.
func splitReport(p []byte) (byte, []byte) {
	if p[0] == 0 {
		return 0, p[1:]
	}
	return p[0], p
}

func withTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(context.Background(), d)
	}
	return context.WithCancel(context.Background())
}
