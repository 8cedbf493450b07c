package storage

import "fmt"

// IOError indicates a file could not be created, read, or written.
type IOError struct {
	Op   string // "create", "read", "write", "delete"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// CorruptDataError indicates a file was read but its content could not be
// decoded.
type CorruptDataError struct {
	Store string // "cache" or "playlist"
	Path  string
	Err   error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("%s file %s is corrupted: %v", e.Store, e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// SerializationError indicates in-memory state could not be encoded.
type SerializationError struct {
	Store string
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Store, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// InvalidNameError indicates a playlist name cannot be mapped to a file.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid playlist name %q: %s", e.Name, e.Reason)
}

// NotFoundError indicates a playlist file does not exist.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("playlist %q not found", e.Name)
}
