package pipeline

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies which stage a run failed in.
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindAcquisition   Kind = "acquisition"
	KindNormalization Kind = "normalization"
	KindTranscription Kind = "transcription"
	KindOutput        Kind = "output"
	KindCancelled     Kind = "cancelled"
)

// Error is the typed failure returned by Run. Window is the zero-based
// window index, or -1 when the failure is not tied to a window.
type Error struct {
	Kind   Kind
	Window int
	Err    error
}

func (e *Error) Error() string {
	if e.Kind == KindCancelled {
		if e.Window >= 0 {
			return fmt.Sprintf("run cancelled (window %d): %v", e.Window, e.Err)
		}
		return fmt.Sprintf("run cancelled: %v", e.Err)
	}
	if e.Window >= 0 {
		return fmt.Sprintf("%s failure (window %d): %v", e.Kind, e.Window, e.Err)
	}
	return fmt.Sprintf("%s failure: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigurationError wraps err as a configuration failure.
func ConfigurationError(err error) error {
	return &Error{Kind: KindConfiguration, Window: -1, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}

func stageError(kind Kind, window int, err error) error {
	return &Error{Kind: kind, Window: window, Err: err}
}

// failure builds the error for a stage. When ctx is already done the run
// counts as cancelled, since the stage error is only the killed tool.
func failure(ctx context.Context, kind Kind, window int, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		return stageError(KindCancelled, window, err)
	}
	return stageError(kind, window, err)
}
