package storage

import "errors"

var (
	// ErrCorruptFile indicates a file-backed store could not be loaded.
	ErrCorruptFile = errors.New("storage.corrupt_file")

	// ErrPersistFailed indicates a write-through to disk failed.
	ErrPersistFailed = errors.New("storage.persist_failed")
)
