package libemit

// Logger is where emitters and buses report what they do:
//
//   - Debug: a listener was registered on or removed from an event, with its id
//     and the resulting registration count.
//   - Info: the emitter was closed.
//   - Warn: a Bus listener received a payload of a type other than its own,
//     which happens when two keys share a name.
//   - Error: SafeEmit recovered a listener panic, tagged with the event and the
//     listener id.
//
// Emitters built with WithName add an "emitter" field to every entry.
type Logger interface {
	WithField(key string, value any) Logger
	Debug(args ...any)
	Debugf(format string, args ...any)
	Debugln(args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Infoln(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Warnln(args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Errorln(args ...any)
}

type noopLogger struct{}

// NewNoopLogger returns the default logger of every emitter: it discards all
// of the entries above. Pass WithLogger to see them.
func NewNoopLogger() Logger { return noopLogger{} }

func (n noopLogger) WithField(string, any) Logger { return n }
func (noopLogger) Debug(...any)                  {}
func (noopLogger) Debugf(string, ...any)         {}
func (noopLogger) Debugln(...any)                {}
func (noopLogger) Info(...any)                   {}
func (noopLogger) Infof(string, ...any)          {}
func (noopLogger) Infoln(...any)                 {}
func (noopLogger) Warn(...any)                   {}
func (noopLogger) Warnf(string, ...any)          {}
func (noopLogger) Warnln(...any)                 {}
func (noopLogger) Error(...any)                  {}
func (noopLogger) Errorf(string, ...any)         {}
func (noopLogger) Errorln(...any)                {}
