package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies). Handlers map these to HTTP
// statuses with errors.Is; storage failures are wrapped separately by
// the adapters and never reach the caller verbatim.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict with current state")

	// ErrDuplicateStock: a stock row already exists for the
	// (warehouse, product) pair. Create is rejected; callers must use
	// the update endpoint instead.
	ErrDuplicateStock = fmt.Errorf("stock entry already exists for this warehouse and product: %w", ErrConflict)

	// Deletes are blocked while dependent stock rows exist.
	ErrWarehouseHasStock = fmt.Errorf("warehouse has dependent stock entries: %w", ErrConflict)
	ErrProductHasStock   = fmt.Errorf("product has dependent stock entries: %w", ErrConflict)
)
