package trace

import "context"

type tracerKey struct{}

type parentKey struct{}

// WithTracer stores t in ctx; nil stores Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// FromContext returns the tracer stored by WithTracer, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithParent records the span that nested work should hang under.
// A nil span leaves ctx unchanged.
func WithParent(ctx context.Context, s *Span) context.Context {
	if s == nil || s.ID() == 0 {
		return ctx
	}
	return context.WithValue(ctx, parentKey{}, s.ID())
}

// ParentFrom returns the span id recorded by WithParent, 0 for a root.
func ParentFrom(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(parentKey{}).(uint64)
	return id
}

// Resolve picks the explicit tracer when set, else the one carried by ctx.
func Resolve(ctx context.Context, explicit Tracer) Tracer {
	if explicit != nil {
		return explicit
	}
	return FromContext(ctx)
}
