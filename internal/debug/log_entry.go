package debug

import (
	"fmt"
	"time"
)

// LogLevel is the severity of a log entry.
type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "ERROR"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelInfo:
		return "INFO"
	case LogLevelDebug:
		return "DEBUG"
	default:
		return "NONE"
	}
}

// Component names the subsystem that produced a log entry. The
// console has no audio or GUI devkit, so the component set is
// narrower than a full console's would be.
type Component string

const (
	ComponentCPU    Component = "CPU"
	ComponentPPU    Component = "PPU"
	ComponentMemory Component = "Memory"
	ComponentInput  Component = "Input"
	ComponentSystem Component = "System"
)

// LogEntry is a single record in the ring buffer.
type LogEntry struct {
	Timestamp time.Time
	Component Component
	Level     LogLevel
	Message   string
}

// Format renders the entry for the terminal.
func (e *LogEntry) Format() string {
	return fmt.Sprintf("[%s] [%s] %s: %s",
		e.Timestamp.Format("15:04:05.000"), e.Component, e.Level, e.Message)
}
