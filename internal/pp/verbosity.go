package pp

// Verbosity is the type of message levels.
type Verbosity int

// Pre-defined verbosity levels.
const (
	Info             Verbosity = iota // useful additional info
	Notice                            // the results the user asked for
	Warning                           // unusual input that was still accepted
	Error                             // failures
	Verbose          Verbosity = Info
	Quiet            Verbosity = Notice
	DefaultVerbosity Verbosity = Verbose
)
