// Copyright (c) 2025 BVK Chaitanya

package sglog

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
)

// groupOrAttrs holds either a group name or a list of slog.Attrs.
type groupOrAttrs struct {
	group string
	attrs []slog.Attr
}

type slogHandler struct {
	backend *Backend

	goas []groupOrAttrs
}

func (h *slogHandler) withGroupOrAttrs(goa groupOrAttrs) *slogHandler {
	h2 := *h
	h2.goas = make([]groupOrAttrs, len(h.goas)+1)
	copy(h2.goas, h.goas)
	h2.goas[len(h2.goas)-1] = goa
	return &h2
}

// WithGroup implements the WithGroup method for slog.Handler interface.
func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{group: name})
}

// WithAttrs implements the WithAttrs method for slog.Handler interface.
func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{attrs: attrs})
}

// Enabled implements the Enabled method for slog.Handler interface.
func (h *slogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.backend.currentLevel.Level()
}

// bufs is a pool of *bytes.Buffer used in formatting log entries.
var bufs sync.Pool

// Handle implements the Handle method for slog.Handler interface.
func (h *slogHandler) Handle(ctx context.Context, r slog.Record) error {
	bufi := bufs.Get()
	var buf *bytes.Buffer
	if bufi == nil {
		buf = bytes.NewBuffer(nil)
		bufi = buf
	} else {
		buf = bufi.(*bytes.Buffer)
		buf.Reset()
	}
	defer bufs.Put(bufi)

	h.format(buf, r)
	return h.backend.emit(r.Level, buf.Bytes())
}

func twoDigits(buf *bytes.Buffer, v int) {
	buf.WriteByte(byte('0' + v/10))
	buf.WriteByte(byte('0' + v%10))
}

// format writes the record in the glog line format:
//
//	Lmmdd hh:mm:ss.uuuuuu] msg key=value ...
func (h *slogHandler) format(buf *bytes.Buffer, r slog.Record) {
	switch {
	case r.Level >= slog.LevelError:
		buf.WriteByte('E')
	case r.Level >= slog.LevelWarn:
		buf.WriteByte('W')
	case r.Level >= slog.LevelInfo:
		buf.WriteByte('I')
	default:
		buf.WriteByte('D')
	}

	_, month, day := r.Time.Date()
	hour, minute, second := r.Time.Clock()
	twoDigits(buf, int(month))
	twoDigits(buf, day)
	buf.WriteByte(' ')
	twoDigits(buf, hour)
	buf.WriteByte(':')
	twoDigits(buf, minute)
	buf.WriteByte(':')
	twoDigits(buf, second)
	buf.WriteByte('.')
	fmt.Fprintf(buf, "%06d", r.Time.Nanosecond()/1000)
	buf.WriteString("] ")

	buf.WriteString(r.Message)

	groups := ""
	for _, goa := range h.goas {
		if goa.group != "" {
			groups = groups + goa.group + "."
			continue
		}
		for _, a := range goa.attrs {
			appendAttr(buf, groups, a)
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(buf, groups, a)
		return true
	})
	buf.WriteByte('\n')
}

func appendAttr(buf *bytes.Buffer, groups string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(buf, groups+a.Key+".", ga)
		}
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(groups)
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	buf.WriteString(strconv.Quote(a.Value.String()))
}
