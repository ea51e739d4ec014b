// Package display routes formatted metrics to optional named text targets.
// Publishing to a name nobody registered is silently skipped; a missing
// readout must never block the frame.
package display

import "fmt"

// Target accepts a formatted line of text.
type Target interface {
	SetText(s string)
}

// TargetFunc adapts a function to the Target interface.
type TargetFunc func(string)

func (f TargetFunc) SetText(s string) { f(s) }

// Registry holds the named targets. The zero registry and a nil registry are
// both usable: every publish becomes a no-op.
type Registry struct {
	targets map[string]Target
}

func NewRegistry() *Registry {
	return &Registry{targets: make(map[string]Target)}
}

func (r *Registry) Register(name string, t Target) {
	if r.targets == nil {
		r.targets = make(map[string]Target)
	}
	r.targets[name] = t
}

// Publish formats and delivers a line to the named target, best-effort.
func (r *Registry) Publish(name, format string, args ...any) {
	if r == nil {
		return
	}
	t, ok := r.targets[name]
	if !ok || t == nil {
		return
	}
	t.SetText(fmt.Sprintf(format, args...))
}
