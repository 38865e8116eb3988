// Package rom loads cartridge ROM images and lays them out over the
// FlashBoy flash address space.
//
// # Flash Geometry
//
// The cartridge flash is always programmed as a full 2 MiB address space:
//
//	2048 packets x 1024 bytes
//
// The last HeaderLen (544) bytes of the address space hold the ROM header and
// the interrupt vectors. The CPU looks for them there regardless of the size
// of the image.
//
// # Accepted Images
//
// An image is accepted iff its size is a power of two in the range
// (16 KiB, 2 MiB]. Anything else is rejected with a *SizeError before any
// device I/O takes place.
//
// # Header Relocation
//
// A ROM smaller than 2 MiB carries its header at the end of its own length.
// The Relocator streams the image as it must appear in flash:
//
//	packets 0 .. hp        image data (hp = size/1024 - 1)
//	packets hp+1 .. 2046   0xFF filler
//	packet  2047           0xFF filler, last 544 bytes = header of packet hp
//
// A 2 MiB image is streamed unchanged.
//
// # Usage
//
//	img, err := rom.Open("game.vb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer img.Close()
//
//	packets, err := img.Packets()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	buf := make([]byte, rom.PacketSize)
//	for {
//	    idx, err := packets.Next(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // send buf as packet idx
//	}
//
// # Error Handling
//
//   - *SizeError: image size rejected by the geometry
//   - *ReadError: the image ended early or failed to read, with the packet index
//
// All errors include context about what failed and where.
package rom
