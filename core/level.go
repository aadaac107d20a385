package core

// Level represents the severity of a log record.
//
// Levels are ordered ascending: Trace < Debug < Info < Warn < Error <
// Crit. A record passes a threshold min when record.Level >= min.
type Level int8

const (
	// TraceLevel for fine-grained code-flow tracing
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CritLevel for critical failures
	CritLevel
)

// NumLevels is the number of defined severity levels.
const NumLevels = int(CritLevel) + 1

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case CritLevel:
		return "CRIT"
	default:
		return "UNKNOWN"
	}
}
