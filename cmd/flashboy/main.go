// FlashBoy is a command-line Virtual Boy flash programmer.
//
// Erases a FlashBoy Plus cartridge and writes a ROM image to it over USB HID:
//
//	flashboy game.vb
//
// With --emulate the image is programmed into a simulated device and the
// resulting flash contents are written to a file instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/moffa90/go-flashboy/device"
	"github.com/moffa90/go-flashboy/emulator"
	"github.com/moffa90/go-flashboy/programmer"
	"github.com/moffa90/go-flashboy/rom"
	"github.com/moffa90/go-flashboy/usbhid"
)

var version = "dev"

type options struct {
	timeout time.Duration
	debug   bool
	quiet   bool
	emulate string
}

func main() {
	// Root context, cancelled on Ctrl+C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		logError("%v", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "flashboy <rom>",
		Short:         "Command-line Virtual Boy Flash Programmer",
		Long:          "Erase a FlashBoy Plus cartridge and write a Virtual Boy ROM image to it.",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				enableDebug()
			} else if opts.quiet {
				enableQuiet()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], opts)
		},
	}

	root.Flags().DurationVar(&opts.timeout, "timeout", 0, "give up on a device response after this long (0 waits forever)")
	root.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	root.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "only report errors")
	root.Flags().StringVar(&opts.emulate, "emulate", "", "program a simulated device and write its flash to this file")

	return root
}

// run validates the ROM before touching the device, then programs it.
func run(ctx context.Context, path string, opts options) error {
	img, err := rom.Open(path)
	if err != nil {
		return err
	}
	defer img.Close()

	logDebug("ROM %s: %d bytes, header packet %d, relocated %t",
		path, img.Size, img.HeaderPacket(), img.Relocated())

	var (
		session *device.Session
		emu     *emulator.Device
	)
	if opts.emulate != "" {
		emu = emulator.New()
		session, err = device.New(emu)
	} else {
		session, err = device.Open(usbhid.WithReadTimeout(opts.timeout))
	}
	if err != nil {
		var nf *device.NotFoundError
		if errors.As(err, &nf) && nf.Err != nil {
			logDebug("device open: %v", nf.Err)
		}
		return err
	}
	defer session.Close()

	logDebug("connected to %q", session.Product())

	ui := newProgressUI(term.IsTerminal(int(os.Stdout.Fd())), opts.quiet)
	prog := programmer.New(session,
		programmer.WithProgressCallback(ui.update),
		programmer.WithLogger(ptermLogger{}),
	)

	res, err := prog.Program(ctx, img)
	if err != nil {
		ui.abort()
		return err
	}

	if emu != nil {
		if err := dumpFlash(emu, opts.emulate); err != nil {
			return err
		}
		logInfo("flash image written to %s", opts.emulate)
	}

	if !opts.quiet {
		fmt.Printf("Flashed %d packets in %s (crc32 0x%08X)\n",
			res.Packets, res.Elapsed.Round(time.Millisecond), res.Checksum)
	}

	return nil
}

func dumpFlash(emu *emulator.Device, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create flash image: %w", err)
	}

	if err := emu.Dump(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write flash image: %w", err)
	}

	return f.Close()
}
