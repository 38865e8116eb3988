package programmer

import "time"

// Programming phases reported in Progress.Phase.
const (
	PhaseErasing     = "erasing"
	PhaseProgramming = "programming"
	PhaseComplete    = "complete"
)

// Progress contains information about the programming progress.
// Passed to ProgressCallback during programming operations.
type Progress struct {
	// Phase describes the current operation phase:
	//   "erasing"     - Erasing the flash
	//   "programming" - Writing flash packets
	//   "complete"    - All packets accepted by the device
	Phase string

	// CurrentPacket is the number of packets accepted so far (0 to TotalPackets)
	CurrentPacket int

	// TotalPackets is the number of packets in the flash address space
	TotalPackets int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// BytesWritten is the total number of bytes written so far
	BytesWritten int

	// ElapsedTime is the time elapsed since programming started
	ElapsedTime time.Duration
}

// ProgressCallback is called during programming to report progress.
// It is called once per accepted packet and should return quickly.
//
// Example:
//
//	prog := programmer.New(session,
//	    programmer.WithProgressCallback(func(p programmer.Progress) {
//	        fmt.Printf("[%s] %d/%d\n", p.Phase, p.CurrentPacket, p.TotalPackets)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the programmer.
// This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	prog := programmer.New(session, programmer.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
