// Package device implements a session with a FlashBoy cartridge programmer.
//
// A Session exists only for a transport whose product string identifies a
// FlashBoy. It exposes the three device commands:
//
//	s, err := device.Open()
//	if err != nil {
//	    log.Fatal(err) // *device.NotFoundError
//	}
//	defer s.Close()
//
//	if err := s.Erase(); err != nil {
//	    log.Fatal(err)
//	}
//
//	tok, err := s.BeginProgram()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for each 1024-byte chunk {
//	    if err := s.WriteChunk(tok, chunk); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Write Token
//
// WriteChunk requires the *WriteToken returned by BeginProgram on the same
// session. There is no way to write a chunk without having switched the
// device into programming mode first.
//
// # Transport
//
// Open uses the usbhid package. Any other Transport, such as the emulator
// package or a test double, can be wrapped with New:
//
//	s, err := device.New(emulator.New())
//
// # Error Handling
//
//   - *NotFoundError: no device, wrong device, or the device could not be opened
//   - *protocol.MismatchError: the device acknowledged with an unexpected opcode
//   - *TransportError: a USB read or write failed
package device
