package ledger

import (
	"context"
	"fmt"
	"io"
)

// Calls is a replay of an operation's recorded history.
type Calls struct {
	// Name is the qualified operation name.
	Name string
	// Count is the number of recorded inputs at read time, including calls
	// that failed or are still running.
	Count int
	// Lines holds one "name(*input) -> output" entry per completed pair.
	Lines []string
}

// Replay reads the history of name and pairs inputs with outputs by
// position, stopping at the shorter list.
func Replay(ctx context.Context, s Store, name string) (Calls, error) {
	h, err := LoadHistory(ctx, s, name)
	if err != nil {
		return Calls{}, err
	}

	n := min(len(h.Inputs), len(h.Outputs))
	lines := make([]string, n)
	for i := range n {
		lines[i] = fmt.Sprintf("%s(*%s) -> %s", name, h.Inputs[i], h.Outputs[i])
	}

	return Calls{Name: name, Count: len(h.Inputs), Lines: lines}, nil
}

// ReplayTo writes a replay of name to w:
//
//	ObjectCache.Store was called 2 times:
//	ObjectCache.Store(*["foo"]) -> "7d3c..."
//	ObjectCache.Store(*[42]) -> "a1f0..."
func ReplayTo(ctx context.Context, w io.Writer, s Store, name string) error {
	calls, err := Replay(ctx, s, name)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s was called %d times:\n", calls.Name, calls.Count); err != nil {
		return err
	}
	for _, line := range calls.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
