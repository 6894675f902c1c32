package cookie

import "errors"

var (
	// ErrInvalidCookie indicates the encoded value could not be parsed as a
	// cookie string.
	ErrInvalidCookie = errors.New("cookie.invalid")

	// ErrCorruptJar indicates a file-backed jar could not be loaded.
	ErrCorruptJar = errors.New("cookie.corrupt_jar")
)
