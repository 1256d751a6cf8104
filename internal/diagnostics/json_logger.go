package diagnostics

import (
	"io"
	"sync"
	"time"

	"github.com/tidwall/sjson"
)

// JSONLogger emits one JSON object per line. It is used instead of Logger
// when stdout is not a terminal, so a supervising process can parse the
// dispatcher's diagnostics directly rather than screen-scraping text.
type JSONLogger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
}

// NewJSONLogger creates a JSONLogger writing to w at the given minimum level.
func NewJSONLogger(w io.Writer, level Level) *JSONLogger {
	return &JSONLogger{output: w, level: level}
}

// Log implements Sink.
func (l *JSONLogger) Log(level Level, msg string, fields map[string]any) {
	if level < l.level {
		return
	}

	line := "{}"
	var err error
	line, err = sjson.Set(line, "time", time.Now().Format(time.RFC3339Nano))
	if err != nil {
		return
	}
	line, err = sjson.Set(line, "level", level.String())
	if err != nil {
		return
	}
	line, err = sjson.Set(line, "msg", msg)
	if err != nil {
		return
	}
	for k, v := range fields {
		line, err = sjson.Set(line, "fields."+k, v)
		if err != nil {
			return
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.output.Write([]byte(line + "\n"))
}
