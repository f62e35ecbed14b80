package patterns

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// AuditLevel labels an AuditLog entry.
type AuditLevel int

const (
	AuditDebug AuditLevel = iota
	AuditInfo
	AuditWarn
	AuditError
)

func (l AuditLevel) String() string {
	switch l {
	case AuditDebug:
		return "DEBUG"
	case AuditInfo:
		return "INFO"
	case AuditWarn:
		return "WARN"
	case AuditError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// AuditEntry is one recorded log line.
type AuditEntry struct {
	When    time.Time
	Level   AuditLevel
	Message string
}

// maxAuditEntries caps the ring buffer; older entries are discarded.
const maxAuditEntries = 1000

// AuditLog is the process-wide singleton: a mutex-guarded, bounded log.
// Entries beyond maxAuditEntries evict the oldest first.
type AuditLog struct {
	mu      sync.Mutex
	entries []AuditEntry
	out     io.Writer
}

var (
	auditOnce     sync.Once
	auditInstance *AuditLog
)

// SharedAuditLog returns the single process-wide instance, creating it on
// first use.
func SharedAuditLog() *AuditLog {
	auditOnce.Do(func() {
		auditInstance = &AuditLog{}
	})
	return auditInstance
}

// SetOutput directs where entries are echoed as they are recorded.
// A nil writer silences the echo without disabling recording.
func (a *AuditLog) SetOutput(w io.Writer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.out = w
}

// Record appends an entry, evicting the oldest when over capacity.
func (a *AuditLog) Record(level AuditLevel, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries = append(a.entries, AuditEntry{
		When:    time.Now(),
		Level:   level,
		Message: message,
	})
	if len(a.entries) > maxAuditEntries {
		a.entries = a.entries[len(a.entries)-maxAuditEntries:]
	}

	if a.out != nil {
		fmt.Fprintf(a.out, "[%s] %s\n", level, message)
	}
}

func (a *AuditLog) Debug(message string) { a.Record(AuditDebug, message) }
func (a *AuditLog) Info(message string)  { a.Record(AuditInfo, message) }
func (a *AuditLog) Warn(message string)  { a.Record(AuditWarn, message) }
func (a *AuditLog) Error(message string) { a.Record(AuditError, message) }

// Len reports how many entries are currently retained.
func (a *AuditLog) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}

// Recent returns up to n entries, newest first.
func (a *AuditLog) Recent(n int) []AuditEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n > len(a.entries) {
		n = len(a.entries)
	}
	out := make([]AuditEntry, 0, n)
	for i := len(a.entries) - 1; i >= len(a.entries)-n; i-- {
		out = append(out, a.entries[i])
	}
	return out
}

// DemoSingleton walks through a single shared instance guarded by sync.Once.
func DemoSingleton(w io.Writer) {
	banner(w, "🔒 SINGLETON PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern ensures only one instance exists.")
	fmt.Fprintln(w, "Go benefit: sync.Once for lazy, race-free initialization.")

	section(w, "Example 1: Thread-safe logging")
	audit := SharedAuditLog()
	audit.SetOutput(w)
	audit.Info("Application started")
	audit.Warn("This is a warning message")
	audit.Error("An error occurred")
	audit.Debug("Debug information")

	section(w, "Example 2: Getting the singleton multiple times")
	first := SharedAuditLog()
	second := SharedAuditLog()
	fmt.Fprintf(w, "Same instance: %v\n", first == second)
	first.Info("Log from handle 1")
	second.Info("Log from handle 2")
	fmt.Fprintf(w, "Entries retained so far: %d\n", audit.Len())

	audit.SetOutput(nil)

	points(w,
		"sync.Once guarantees exactly one initialization",
		"Mutex guards the shared ring buffer",
		"Bounded buffer evicts oldest entries past the cap",
		"Every caller observes the same state",
	)
}
