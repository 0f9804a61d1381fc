// Package view holds the per-session view models behind the dashboard
// screens. Each view fetches its collection when mounted, then applies user
// actions as request/response calls against the course API, patching its
// local copy in place after a successful mutation.
package view

// Phase is the lifecycle position of a view.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseLoading  Phase = "loading"
	PhaseLoaded   Phase = "loaded"
	PhaseError    Phase = "error"
	PhaseMutating Phase = "mutating"
)

// Collection is a transient, wholesale-replaced copy of a remote list.
type Collection[T any] struct {
	Phase Phase  `json:"phase"`
	Items []T    `json:"items"`
	Error string `json:"error,omitempty"`
}

// reset returns the collection to its freshly mounted state.
func (c *Collection[T]) reset() {
	c.Phase = PhaseIdle
	c.Items = []T{}
	c.Error = ""
}

func (c *Collection[T]) beginLoad() {
	c.Phase = PhaseLoading
	c.Error = ""
}

// resolve finishes a fetch. On failure the items are left as they were and
// failMsg becomes the visible error.
func (c *Collection[T]) resolve(items []T, err error, failMsg string) {
	if err != nil {
		c.Phase = PhaseError
		c.Error = failMsg
		return
	}
	if items == nil {
		items = []T{}
	}
	c.Items = items
	c.Phase = PhaseLoaded
}

// beginMutation marks an in-flight mutation and returns the phase to restore.
func (c *Collection[T]) beginMutation() Phase {
	prev := c.Phase
	c.Phase = PhaseMutating
	return prev
}

func (c *Collection[T]) endMutation(prev Phase) {
	c.Phase = prev
}

// Loading reports whether the collection has not been resolved yet.
func (c *Collection[T]) Loading() bool {
	return c.Phase == PhaseIdle || c.Phase == PhaseLoading
}

// Failed reports whether the last fetch failed.
func (c *Collection[T]) Failed() bool {
	return c.Phase == PhaseError
}

func (c *Collection[T]) Len() int {
	return len(c.Items)
}

// Find returns the first item matching.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	for _, it := range c.Items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Remove drops every matching item and returns how many were removed.
func (c *Collection[T]) Remove(match func(T) bool) int {
	kept := c.Items[:0]
	removed := 0
	for _, it := range c.Items {
		if match(it) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept
	return removed
}

// Patch applies fn to every matching item in place.
func (c *Collection[T]) Patch(match func(T) bool, fn func(*T)) int {
	patched := 0
	for i := range c.Items {
		if match(c.Items[i]) {
			fn(&c.Items[i])
			patched++
		}
	}
	return patched
}
