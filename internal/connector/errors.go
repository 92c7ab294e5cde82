package connector

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned when an operation requires an attached browser.
// Hitting it is a caller bug, not a runtime failure: Connect must succeed
// before tasks or context/page acquisition are allowed.
var ErrNotConnected = errors.New("not connected to a browser")

// ErrorKind classifies connector failures.
type ErrorKind int

const (
	// KindDetectionMiss means no usable executable or profile directory was
	// available. Never fatal; callers fall back to a bundled engine.
	KindDetectionMiss ErrorKind = iota

	// KindLaunchFailure means the browser process could not be spawned or its
	// debug port never became reachable within the polling bound.
	KindLaunchFailure

	// KindAttachFailure means the debug endpoint was reachable but the CDP
	// attach itself failed.
	KindAttachFailure

	// KindTaskFailure means a navigation task failed after attach.
	KindTaskFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindDetectionMiss:
		return "detection-miss"
	case KindLaunchFailure:
		return "launch-failure"
	case KindAttachFailure:
		return "attach-failure"
	case KindTaskFailure:
		return "task-failure"
	default:
		return "unknown"
	}
}

// Error is a classified connector failure. Boundary methods absorb these into
// boolean or structured results; LastError exposes the most recent one.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
