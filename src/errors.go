package gnssgo

import "errors"

// Construction-time and runtime sentinel errors, matched with errors.Is by
// callers that need to distinguish failure modes (see spec §7).
var (
	ErrEmptyChipArray       = errors.New("gnssgo: chip array is empty")
	ErrNonPositiveRate      = errors.New("gnssgo: sample rate must be positive")
	ErrBadStartIndex        = errors.New("gnssgo: start index out of range [1,len]")
	ErrTooFewBreaks         = errors.New("gnssgo: piecewise polynomial needs at least two breaks")
	ErrNonIncreasingBreaks  = errors.New("gnssgo: piecewise polynomial breaks must be strictly increasing")
	ErrBadCoefCount         = errors.New("gnssgo: piecewise polynomial coefficient rows do not match breaks")
	ErrBadMagic             = errors.New("gnssgo: piecewise polynomial file has bad magic word")
	ErrChunkTooSmall        = errors.New("gnssgo: requested chunk produced fewer than one high-rate sample")
	ErrNonMonotonicTimeAxis = errors.New("gnssgo: source buffer time axis is not strictly increasing")
	ErrUnsortedResampleAxis = errors.New("gnssgo: resample output axis must be weakly increasing")
	ErrBadFilterCoefs       = errors.New("gnssgo: filter requires a non-empty denominator with nonzero a[0]")
	ErrBadOversampleRatio   = errors.New("gnssgo: oversample ratio K must be a positive integer")
	ErrBadFDMAOffset        = errors.New("gnssgo: FDMA offset must be finite")
	ErrNoSignals            = errors.New("gnssgo: composite requires at least one signal source")
)
