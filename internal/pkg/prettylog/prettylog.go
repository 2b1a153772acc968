// Package prettylog renders zap entries as compact single-line console
// output for development runs. Production uses zap's JSON encoder instead.
package prettylog

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	gray   = "\033[90m"
)

// hintKey marks a field as a rendering hint rather than log data.
const hintKey = "_hint"

// ReadyField makes the entry render with a READY tag and the time since
// process start. Attach it to the "listening" log line.
func ReadyField() zapcore.Field {
	return zapcore.Field{Key: hintKey, Type: zapcore.StringType, String: "ready"}
}

var (
	startOnce sync.Once
	startedAt time.Time
)

// MarkProcessStart records the boot instant for ReadyField's uptime. Safe to
// call more than once; only the first call counts.
func MarkProcessStart() {
	startOnce.Do(func() { startedAt = time.Now() })
}

// ShouldColor reports whether ANSI output is appropriate for this terminal.
func ShouldColor() bool {
	return os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb"
}

var pool = buffer.NewPool()

type devEncoder struct {
	*zapcore.MapObjectEncoder
	color bool
}

// NewEncoder builds the console encoder. color toggles ANSI escapes.
func NewEncoder(color bool) zapcore.Encoder {
	return &devEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder(), color: color}
}

func (e *devEncoder) Clone() zapcore.Encoder {
	clone := &devEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder(), color: e.color}
	for k, v := range e.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (e *devEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	scratch := zapcore.NewMapObjectEncoder()
	for k, v := range e.Fields {
		scratch.Fields[k] = v
	}
	for _, f := range fields {
		f.AddTo(scratch)
	}
	hint, _ := scratch.Fields[hintKey].(string)
	delete(scratch.Fields, hintKey)

	buf := pool.Get()
	e.paint(buf, gray, entry.Time.Format("15:04:05.000"))
	buf.AppendByte(' ')
	tag, tagColor := levelTag(entry.Level, hint)
	e.paint(buf, tagColor, tag)
	buf.AppendByte(' ')
	if entry.LoggerName != "" {
		e.paint(buf, yellow, "["+entry.LoggerName+"]")
		buf.AppendByte(' ')
	}
	buf.AppendString(entry.Message)

	keys := make([]string, 0, len(scratch.Fields))
	for k := range scratch.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf.AppendByte(' ')
		e.paint(buf, gray, k+"=")
		buf.AppendString(renderValue(scratch.Fields[k]))
	}

	if hint == "ready" && !startedAt.IsZero() {
		e.paint(buf, green, fmt.Sprintf(" in %dms", time.Since(startedAt).Milliseconds()))
	}
	buf.AppendByte('\n')
	return buf, nil
}

func (e *devEncoder) paint(buf *buffer.Buffer, color, s string) {
	if e.color && color != "" {
		buf.AppendString(color)
		buf.AppendString(s)
		buf.AppendString(reset)
		return
	}
	buf.AppendString(s)
}

func levelTag(level zapcore.Level, hint string) (string, string) {
	if hint == "ready" {
		return "READY", green
	}
	switch level {
	case zapcore.DebugLevel:
		return "DEBUG", gray
	case zapcore.WarnLevel:
		return "WARN", yellow
	case zapcore.InfoLevel:
		return "INFO", cyan
	default:
		return strings.ToUpper(level.String()), red
	}
}

func renderValue(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
