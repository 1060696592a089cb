package service

import "errors"

var (
	ErrSessionNotFound  = errors.New("wizard session not found")
	ErrSaveInProgress   = errors.New("a save is already in progress")
	ErrNotAtResults     = errors.New("submission is only available from the results step")
	ErrResponseNotFound = errors.New("response not found")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrInvalidAnswers   = errors.New("invalid answers")
	ErrEditConflict     = errors.New("session changed concurrently, retry")
	// ErrSaveFailed wraps store failures that are not business rejections.
	ErrSaveFailed = errors.New("failed to save response")
)
