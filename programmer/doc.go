// Package programmer provides a high-level API for flashing FlashBoy cartridges.
//
// # Overview
//
// This package orchestrates the complete programming sequence:
//   - Erasing the flash
//   - Switching the device into programming mode
//   - Writing all 2048 flash packets, with header relocation for short ROMs
//   - Reporting progress after every packet
//
// # Basic Usage
//
//	img, err := rom.Open("game.vb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer img.Close()
//
//	s, err := device.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	prog := programmer.New(s)
//	if _, err := prog.Program(context.Background(), img); err != nil {
//	    log.Fatal(err)
//	}
//
// The image is validated by rom.Open, so a bad file never reaches the device.
//
// # Progress Tracking
//
// Track programming progress with a callback:
//
//	prog := programmer.New(s,
//	    programmer.WithProgressCallback(func(p programmer.Progress) {
//	        fmt.Printf("[%s] %.1f%% - Packet %d/%d\n",
//	            p.Phase, p.Percentage, p.CurrentPacket, p.TotalPackets)
//	    }),
//	)
//
// # Logging
//
// Integrate with any logging framework through the Logger interface:
//
//	prog := programmer.New(s, programmer.WithLogger(myLogger))
//
// # Error Handling
//
// Every error aborts the run; nothing is retried and the device is left as
// the last command left it:
//   - *device.NotFoundError: returned by device.Open, before Program
//   - *protocol.MismatchError: the device rejected erase or a packet
//   - *device.TransportError: a USB transfer failed
//   - *rom.ReadError: the ROM ended early, with the packet index
//   - *PacketError: wraps any failure writing a packet, with the packet index
package programmer
