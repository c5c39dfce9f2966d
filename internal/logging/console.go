package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// consoleHandler renders records for humans:
//
//	2026-01-02 15:04:05 INFO [pipeline] Turn 2 – preferences updated
//	    - Changed: actor_id
//
// Info and above show a curated set of fields; debug records list every
// attribute verbatim.
type consoleHandler struct {
	shared    *consoleOutput
	level     slog.Leveler
	addSource bool
	prefix    string
	attrs     []field
}

// consoleOutput is shared by every handler derived through WithAttrs so
// writes stay serialized and repeat suppression spans the whole logger.
type consoleOutput struct {
	mu       sync.Mutex
	w        io.Writer
	lastSeen map[string]map[string]string
}

type field struct {
	key   string
	value slog.Value
}

func newConsoleHandler(w io.Writer, lvl slog.Leveler, addSource bool) *consoleHandler {
	return &consoleHandler{
		shared:    &consoleOutput{w: w, lastSeen: make(map[string]map[string]string)},
		level:     lvl,
		addSource: addSource,
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(next.attrs, h.attrs)
	for _, a := range attrs {
		next.attrs = appendFlat(next.attrs, h.prefix, a)
	}
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]field, len(h.attrs), len(h.attrs)+record.NumAttrs())
	copy(fields, h.attrs)
	record.Attrs(func(a slog.Attr) bool {
		fields = appendFlat(fields, h.prefix, a)
		return true
	})
	fields = lastWins(fields)

	component := lookup(fields, FieldComponent)
	turn := lookup(fields, FieldTurn)
	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var buf bytes.Buffer
	buf.WriteString(consoleTime(ts))
	buf.WriteByte(' ')
	buf.WriteString(levelLabel(record.Level))
	if component != "" {
		buf.WriteString(" [" + component + "]")
	}
	if turn != "" {
		buf.WriteString(" Turn " + turn)
	}
	if msg := strings.TrimSpace(record.Message); msg != "" {
		buf.WriteString(" – " + msg)
	}
	if h.addSource && record.PC != 0 {
		if src := record.Source(); src != nil && src.File != "" {
			buf.WriteString(" [" + filepath.Base(src.File) + ":" + strconv.Itoa(src.Line) + "]")
		}
	}
	buf.WriteByte('\n')

	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()

	if record.Level < slog.LevelInfo {
		for _, f := range fields {
			buf.WriteString("    " + f.key + ": " + formatValue(f.value) + "\n")
		}
	} else {
		shown, hidden := summarize(fields)
		shown = h.shared.dropRepeats(component, shown, record.Level)
		for _, line := range shown {
			buf.WriteString("    - " + line.label + ": " + line.value + "\n")
		}
		if hidden == 1 {
			buf.WriteString("    + 1 more field hidden\n")
		} else if hidden > 1 {
			buf.WriteString("    + " + strconv.Itoa(hidden) + " more fields hidden\n")
		}
	}
	_, err := h.shared.w.Write(buf.Bytes())
	return err
}

// dropRepeats hides info fields whose value has not changed since the
// component last logged them. Warnings always print in full.
func (o *consoleOutput) dropRepeats(component string, lines []summaryLine, level slog.Level) []summaryLine {
	if component == "" {
		return lines
	}
	seen := o.lastSeen[component]
	if seen == nil {
		seen = make(map[string]string)
		o.lastSeen[component] = seen
	}
	out := lines[:0:0]
	for _, line := range lines {
		if level == slog.LevelInfo && seen[line.label] == line.value {
			continue
		}
		seen[line.label] = line.value
		out = append(out, line)
	}
	return out
}

func appendFlat(dst []field, prefix string, a slog.Attr) []field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	if a.Value.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner = prefix + a.Key + "."
		}
		for _, member := range a.Value.Group() {
			dst = appendFlat(dst, inner, member)
		}
		return dst
	}
	if a.Key == "" {
		return dst
	}
	return append(dst, field{key: prefix + a.Key, value: a.Value})
}

// lastWins keeps the first position of each key with its latest value.
func lastWins(fields []field) []field {
	index := make(map[string]int, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if i, ok := index[f.key]; ok {
			out[i].value = f.value
			continue
		}
		index[f.key] = len(out)
		out = append(out, f)
	}
	return out
}

func lookup(fields []field, key string) string {
	for _, f := range fields {
		if f.key == key {
			return attrString(f.value)
		}
	}
	return ""
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
