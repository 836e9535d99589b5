package load

import "fmt"

// FileError is returned when a file sink could not be written.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// StoreError is returned when the relational store rejected an operation.
type StoreError struct {
	Table string
	Op    string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store table %q: %s: %v", e.Table, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
