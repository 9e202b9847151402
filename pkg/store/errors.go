package store

// Errors
var (
	ErrNotFound  = &StoreError{"buffer not found"}
	ErrCorrupted = &StoreError{"stored buffer is not well-formed"}
	ErrClosed    = &StoreError{"store is not open"}
)

// StoreError represents a buffer store error
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
