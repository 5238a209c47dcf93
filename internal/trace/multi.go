package trace

import "errors"

type tee []Tracer

// Tee fans events out to every tracer. Each tracer still applies its own
// level; the tee reports the most verbose one.
func Tee(tracers ...Tracer) Tracer {
	return tee(tracers)
}

func (t tee) Emit(ev *Event) {
	for _, tr := range t {
		tr.Emit(ev)
	}
}

func (t tee) Flush() error {
	var errs []error
	for _, tr := range t {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

func (t tee) Close() error {
	var errs []error
	for _, tr := range t {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

func (t tee) Level() Level {
	var l Level
	for _, tr := range t {
		l = max(l, tr.Level())
	}
	return l
}

func (t tee) Enabled() bool { return t.Level() > LevelOff }
