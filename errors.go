package chianti

import (
	"github.com/TobyPDE/chianti/internal/loader"
	"github.com/TobyPDE/chianti/internal/provider"
)

// ErrBatchSizeNonPositive is returned by NewProvider when batchSize <= 0.
var ErrBatchSizeNonPositive = provider.ErrBatchSizeNonPositive

// ErrNumClassesNonPositive is returned by NewProvider when numClasses <= 0
// and mode is TargetOneHot.
var ErrNumClassesNonPositive = provider.ErrNumClassesNonPositive

// ErrClosed is returned by Provider.Next after Provider.Close.
var ErrClosed = provider.ErrClosed

// ErrBadValueMapLength is returned by NewValueMapperLoader when the
// supplied table does not have exactly 256 entries.
var ErrBadValueMapLength = loader.ErrBadValueMapLength
