package errs

import "fmt"

// InsufficientStockError reports a deduction larger than the quantity on hand.
// Nothing is mutated when it is returned.
type InsufficientStockError struct {
	Size      string
	Requested int
	Available int
}

func NewInsufficientStockError(size string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		Size:      size,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: size %q, requested %d, available %d",
		ErrInsufficientStock, e.Size, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
