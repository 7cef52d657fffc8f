package domain

import "errors"

// Round and session failure kinds. Round-level errors are wrapped with %w
// and recorded on the round report; only pool construction aborts a session.
var (
	// ErrApplyFailure is an edit or flush failure inside an environment.
	ErrApplyFailure = errors.New("apply failure")
	// ErrTestHostCrash means the host left no usable result channel.
	ErrTestHostCrash = errors.New("test host crash")
	// ErrRoundTimeout means the host exceeded the round budget.
	ErrRoundTimeout = errors.New("round timeout")
	// ErrRoundException is any other failure caught at the round boundary.
	ErrRoundException = errors.New("round exception")
	// ErrPoolExhausted is returned by TakeOne when no environment is free.
	ErrPoolExhausted = errors.New("no free environment")
	// ErrPoolClosed is returned by Acquire after Close.
	ErrPoolClosed = errors.New("pool closed")
	// ErrUnknownCandidate means a candidate id did not resolve in an
	// environment's program copy.
	ErrUnknownCandidate = errors.New("unknown candidate")
)
