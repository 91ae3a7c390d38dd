package engine

import "errors"

// Caller-mistake errors. None of these mutate session state.
var (
	ErrOutOfOrderAnswer     = errors.New("question answered before its predecessor")
	ErrInvalidQuestionIndex = errors.New("question index out of range or test already finalized")
	ErrDuplicateCompletion  = errors.New("lesson already completed")
	ErrLockedContent        = errors.New("content is locked until prerequisites are met")
	ErrStepMismatch         = errors.New("lesson step does not match the recorded step")
	ErrDrillNotScored       = errors.New("drill score has not been recorded for this lesson")
	ErrQuizIncomplete       = errors.New("not all quiz questions have been answered")
	ErrInvalidDrillMove     = errors.New("invalid drill strand, position or base")
)

// ErrPersistenceUnavailable is returned by the store layer when a read or
// write fails. It is recoverable: local state stands and a retry is scheduled.
var ErrPersistenceUnavailable = errors.New("progress store unavailable")
