package diagnostics

// Sink receives diagnostic messages from the dispatcher and its
// collaborators. A binding registry or engine never returns a diagnostic
// error to its caller (per the dispatch contract); it reports through a
// Sink instead.
type Sink interface {
	Log(level Level, msg string, fields map[string]any)
}

// nullSink discards everything.
type nullSink struct{}

func (nullSink) Log(Level, string, map[string]any) {}

// NullSink is a Sink that discards all messages. Useful as a zero-value
// default so callers never need a nil check.
var NullSink Sink = nullSink{}
