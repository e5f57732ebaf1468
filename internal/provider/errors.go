package provider

import "errors"

// ErrBatchSizeNonPositive is returned when a Provider is constructed
// with a batch size <= 0.
var ErrBatchSizeNonPositive = errors.New("chianti: batch size must be positive")

// ErrNumClassesNonPositive is returned when a Provider is constructed
// with a non-positive class count while using one-hot targets.
var ErrNumClassesNonPositive = errors.New("chianti: num classes must be positive")

// ErrClosed is returned by Next when called after Close.
var ErrClosed = errors.New("chianti: provider is closed")
