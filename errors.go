package goapkmirror

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per terminal failure kind. None of them is retried
// internally; retry policy belongs to the invoking scheduler.
var (
	ErrVersionMissing  = errors.New("target version not set")
	ErrVersionNotFound = errors.New("version not found in uploads index")
	ErrNoVariant       = errors.New("no suitable variant found")
	ErrChainBroken     = errors.New("download chain broken")
)

// Stage identifies the step of a sync run. Stages run strictly in order and
// are never revisited.
type Stage string

const (
	StageLocate   Stage = "locate"
	StageSelect   Stage = "select"
	StageResolve  Stage = "resolve"
	StageDownload Stage = "download"
)

// SyncError wraps a stage failure so callers can report which step of the
// chain broke. errors.Is reaches the wrapped sentinel.
type SyncError struct {
	Stage Stage
	Err   error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
