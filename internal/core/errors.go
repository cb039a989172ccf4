package core

import "fmt"

// All rejections are recoverable and local: the operation is refused as a
// whole, the caller's State is untouched, and one of the three typed errors
// below explains why.

// InvalidRequestError rejects a request that is malformed before any stock
// math runs: unknown product, non-positive amount, unrecognized location,
// scope, or horizon.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Reason
}

func invalidRequestf(format string, args ...any) *InvalidRequestError {
	return &InvalidRequestError{Reason: fmt.Sprintf(format, args...)}
}

// InsufficientStockError reports that the source location cannot cover the
// requested amount. Available carries the actual quantity so callers can
// surface it.
type InsufficientStockError struct {
	ProductID string
	Location  Location
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s at %s: requested %d, available %d",
		e.ProductID, e.Location, e.Requested, e.Available)
}

// UnknownTransferKindError rejects a transfer kind outside the fixed routing
// table. Nothing ever silently defaults.
type UnknownTransferKindError struct {
	Kind TransferKind
}

func (e *UnknownTransferKindError) Error() string {
	return fmt.Sprintf("unknown transfer kind %q", string(e.Kind))
}
