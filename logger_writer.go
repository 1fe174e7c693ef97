package libemit

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// writerLogger implements Logger on top of an io.Writer, one line per entry:
//
//	[2006-01-02 15:04:05] LEVEL [key=value, ...]: message
//
// Fields are sorted by key. Loggers derived with WithField share the parent's
// mutex, so lines from an emitter and its children never interleave.
type writerLogger struct {
	writer io.Writer
	mu     *sync.Mutex
	fields map[string]any
	now    func() time.Time
}

// NewWriterLogger creates a logger that writes plain text lines to writer.
func NewWriterLogger(writer io.Writer) Logger {
	return &writerLogger{
		writer: writer,
		mu:     &sync.Mutex{},
		fields: make(map[string]any),
		now:    time.Now,
	}
}

func (l *writerLogger) WithField(key string, value any) Logger {
	newLogger := &writerLogger{
		writer: l.writer,
		mu:     l.mu,
		fields: make(map[string]any, len(l.fields)+1),
		now:    l.now,
	}
	// Copy existing fields
	for k, v := range l.fields {
		newLogger.fields[k] = v
	}
	newLogger.fields[key] = value
	return newLogger
}

func (l *writerLogger) formatFields() string {
	if len(l.fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(" [")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, l.fields[k])
	}
	b.WriteString("]")
	return b.String()
}

func (l *writerLogger) log(level, msg string) {
	timestamp := l.now().Format("2006-01-02 15:04:05")
	fields := l.formatFields()
	msg = strings.TrimRight(msg, "\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.writer, "[%s] %s%s: %s\n", timestamp, level, fields, msg)
}

const (
	levelDebug = "DEBUG"
	levelInfo  = "INFO"
	levelWarn  = "WARN"
	levelError = "ERROR"
)

func (l *writerLogger) Debug(args ...any)                 { l.log(levelDebug, fmt.Sprint(args...)) }
func (l *writerLogger) Debugf(format string, args ...any) { l.log(levelDebug, fmt.Sprintf(format, args...)) }
func (l *writerLogger) Debugln(args ...any)               { l.log(levelDebug, fmt.Sprintln(args...)) }
func (l *writerLogger) Info(args ...any)                  { l.log(levelInfo, fmt.Sprint(args...)) }
func (l *writerLogger) Infof(format string, args ...any)  { l.log(levelInfo, fmt.Sprintf(format, args...)) }
func (l *writerLogger) Infoln(args ...any)                { l.log(levelInfo, fmt.Sprintln(args...)) }
func (l *writerLogger) Warn(args ...any)                  { l.log(levelWarn, fmt.Sprint(args...)) }
func (l *writerLogger) Warnf(format string, args ...any)  { l.log(levelWarn, fmt.Sprintf(format, args...)) }
func (l *writerLogger) Warnln(args ...any)                { l.log(levelWarn, fmt.Sprintln(args...)) }
func (l *writerLogger) Error(args ...any)                 { l.log(levelError, fmt.Sprint(args...)) }
func (l *writerLogger) Errorf(format string, args ...any) { l.log(levelError, fmt.Sprintf(format, args...)) }
func (l *writerLogger) Errorln(args ...any)               { l.log(levelError, fmt.Sprintln(args...)) }
