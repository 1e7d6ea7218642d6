package trace

import (
	"context"
	"sort"
	"strconv"
	"sync/atomic"
	"time"
)

var (
	globalSeq   atomic.Uint64
	globalSpans atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 { return globalSeq.Add(1) }

// NextSpanID returns a unique span ID.
func NextSpanID() uint64 { return globalSpans.Add(1) }

// Span is an open begin/end pair. A span whose scope is filtered out by the
// tracer level still measures its duration but emits nothing.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	scope    Scope
	name     string
	started  time.Time
	extra    map[string]string
	counts   map[string]int
}

func (s *Span) live() bool {
	return s != nil && s.tracer != nil && s.tracer.Enabled()
}

// Begin opens a span under parent (0 for a root span).
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	now := time.Now()
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		// родитель сохраняется, чтобы дочерние спаны не теряли связь
		return &Span{tracer: Nop, id: parent, started: now}
	}
	s := &Span{tracer: t, id: NextSpanID(), parentID: parent, scope: scope, name: name, started: now}
	t.Emit(&Event{Time: now, Kind: KindSpanBegin, Scope: scope, SpanID: s.id, ParentID: parent, Name: name})
	return s
}

// StartSpan opens a span under the span carried by ctx and returns a context
// in which the new span is the parent.
func StartSpan(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	s := Begin(FromContext(ctx), scope, name, CurrentSpan(ctx))
	return WithSpan(ctx, s), s
}

// Child opens a span nested in s on the same tracer.
func (s *Span) Child(scope Scope, name string) *Span {
	if s == nil {
		return Begin(Nop, scope, name, 0)
	}
	return Begin(s.tracer, scope, name, s.id)
}

// End emits the end event and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil {
		return 0
	}
	dur := time.Since(s.started)
	if !s.live() || s.name == "" {
		return dur
	}
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		Name:     s.name,
		Detail:   detail,
		Extra:    s.extras(),
	})
	return dur
}

func (s *Span) extras() map[string]string {
	if len(s.counts) == 0 {
		return s.extra
	}
	out := make(map[string]string, len(s.extra)+len(s.counts))
	for k, v := range s.extra {
		out[k] = v
	}
	keys := make([]string, 0, len(s.counts))
	for k := range s.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out[k] = strconv.Itoa(s.counts[k])
	}
	return out
}

// WithExtra attaches a key-value pair to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if !s.live() {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string)
	}
	s.extra[key] = value
	return s
}

// Count adds n to the counter key reported with the end event. Not safe for
// concurrent use on one span.
func (s *Span) Count(key string, n int) *Span {
	if !s.live() {
		return s
	}
	if s.counts == nil {
		s.counts = make(map[string]int)
	}
	s.counts[key] += n
	return s
}

// ID returns the span ID, or the inherited parent ID for a filtered span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}
