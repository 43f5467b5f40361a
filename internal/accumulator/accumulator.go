// Package accumulator persists transcript fragments to a single text file.
package accumulator

import (
	"fmt"
	"os"
	"path/filepath"
)

// Accumulator appends fragments, in order, to one artifact. The artifact is
// reset once per Accumulator; every fragment is written and synced before
// Append returns so an interrupted run leaves a valid prefix on disk.
type Accumulator struct {
	path  string
	reset bool
}

// New returns an Accumulator for the artifact at path.
func New(path string) *Accumulator {
	return &Accumulator{path: path}
}

// Path returns the artifact location.
func (a *Accumulator) Path() string {
	return a.path
}

// Reset truncates the artifact, creating it if needed. Only the first call
// has an effect.
func (a *Accumulator) Reset() error {
	if a.reset {
		return nil
	}

	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create transcript dir: %w", err)
		}
	}

	f, err := os.Create(a.path)
	if err != nil {
		return fmt.Errorf("reset transcript: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("reset transcript: %w", err)
	}

	a.reset = true
	return nil
}

// Append writes fragment at the end of the artifact. No separator is added.
// The artifact is reset first if Reset has not been called yet.
func (a *Accumulator) Append(fragment string) error {
	if err := a.Reset(); err != nil {
		return err
	}

	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("open transcript: %w", err)
	}

	if _, err := f.WriteString(fragment); err != nil {
		f.Close()
		return fmt.Errorf("append fragment: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync transcript: %w", err)
	}
	return f.Close()
}
