// Package debug provides the emulator's centralized, non-blocking
// logger: a fixed-size ring buffer fed by a buffered channel, with
// per-component enable flags so the CLI's -log flag can turn on only
// what's being debugged.
package debug

import (
	"fmt"
	"sync"
)

// Logger is the emulator's shared diagnostic sink.
type Logger struct {
	entries    []LogEntry
	entriesMu  sync.RWMutex
	maxEntries int
	writeIndex int
	entryCount int

	componentEnabled map[Component]bool
	componentMu      sync.RWMutex

	minLevel LogLevel
	levelMu  sync.RWMutex

	logChan  chan LogEntry
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewLogger starts a Logger with a ring buffer of maxEntries records.
// Every component except System is disabled by default; Enable turns
// them on.
func NewLogger(maxEntries int) *Logger {
	if maxEntries < 100 {
		maxEntries = 100
	}

	l := &Logger{
		entries:          make([]LogEntry, maxEntries),
		maxEntries:       maxEntries,
		componentEnabled: make(map[Component]bool),
		minLevel:         LogLevelInfo,
		logChan:          make(chan LogEntry, 1000),
		shutdown:         make(chan struct{}),
	}

	l.componentEnabled[ComponentCPU] = false
	l.componentEnabled[ComponentPPU] = false
	l.componentEnabled[ComponentMemory] = false
	l.componentEnabled[ComponentInput] = false
	l.componentEnabled[ComponentSystem] = true

	l.wg.Add(1)
	go l.processLogs()
	return l
}

func (l *Logger) processLogs() {
	defer l.wg.Done()
	for {
		select {
		case entry := <-l.logChan:
			l.addEntry(entry)
		case <-l.shutdown:
			for {
				select {
				case entry := <-l.logChan:
					l.addEntry(entry)
				default:
					return
				}
			}
		}
	}
}

func (l *Logger) addEntry(entry LogEntry) {
	l.entriesMu.Lock()
	defer l.entriesMu.Unlock()
	l.entries[l.writeIndex] = entry
	l.writeIndex = (l.writeIndex + 1) % l.maxEntries
	if l.entryCount < l.maxEntries {
		l.entryCount++
	}
}

// Enable turns logging on or off for a single component.
func (l *Logger) Enable(c Component, on bool) {
	l.componentMu.Lock()
	defer l.componentMu.Unlock()
	l.componentEnabled[c] = on
}

// SetMinLevel filters out entries below level.
func (l *Logger) SetMinLevel(level LogLevel) {
	l.levelMu.Lock()
	defer l.levelMu.Unlock()
	l.minLevel = level
}

// Log records message for component at level, dropping it silently if
// the component is disabled, the level is filtered, or the channel is
// momentarily full (the caller, usually the CPU's hot path, must never
// block on logging).
func (l *Logger) Log(component Component, level LogLevel, message string) {
	l.componentMu.RLock()
	enabled := l.componentEnabled[component]
	l.componentMu.RUnlock()
	if !enabled {
		return
	}

	l.levelMu.RLock()
	minLevel := l.minLevel
	l.levelMu.RUnlock()
	if level > minLevel {
		return
	}

	entry := LogEntry{Component: component, Level: level, Message: message}
	select {
	case l.logChan <- entry:
	default:
	}
}

func (l *Logger) Logf(component Component, level LogLevel, format string, args ...any) {
	l.Log(component, level, fmt.Sprintf(format, args...))
}

// Warnf implements cpu.Logger and memory.Logger, logging under
// ComponentSystem. Components that need their own channel wrap Logger in
// a small adapter (see CPULogger/MemoryLogger below) instead of
// calling this directly.
func (l *Logger) Warnf(format string, args ...any) {
	l.Logf(ComponentSystem, LogLevelWarning, format, args...)
}

// GetEntries returns a snapshot of the buffer, oldest first.
func (l *Logger) GetEntries() []LogEntry {
	l.entriesMu.RLock()
	defer l.entriesMu.RUnlock()

	if l.entryCount == 0 {
		return []LogEntry{}
	}
	out := make([]LogEntry, l.entryCount)
	if l.entryCount < l.maxEntries {
		copy(out, l.entries[:l.entryCount])
		return out
	}
	copy(out, l.entries[l.writeIndex:])
	copy(out[l.maxEntries-l.writeIndex:], l.entries[:l.writeIndex])
	return out
}

// Shutdown stops the background goroutine after draining the channel.
func (l *Logger) Shutdown() {
	close(l.shutdown)
	l.wg.Wait()
}

// CPULogger adapts Logger to cpu.Logger, tagging every message with
// ComponentCPU.
type CPULogger struct{ L *Logger }

func (c CPULogger) Warnf(format string, args ...any) {
	c.L.Logf(ComponentCPU, LogLevelWarning, format, args...)
}

// MemoryLogger adapts Logger to memory.Logger, tagging every message
// with ComponentMemory.
type MemoryLogger struct{ L *Logger }

func (m MemoryLogger) Warnf(format string, args ...any) {
	m.L.Logf(ComponentMemory, LogLevelWarning, format, args...)
}
