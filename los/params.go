package los

import "math"

// LOSParams holds the read-only configuration consumed by LosPosterior. It
// does not own the ImgStack it refers to; the stack's lifetime must
// outlive any sampler built on top of these params.
type LOSParams struct {
	Stack  *ImgStack
	P0     float64
	LnP0   float64
	EBVMax float64
}

// NewLOSParams builds LOSParams over stack with per-pixel likelihood floor
// p0 and soft reddening ceiling ebvMax. ebvMax == 0 disables the ceiling
// prior. Panics if p0 <= 0 or ebvMax < 0, since those are caller contract
// violations.
func NewLOSParams(stack *ImgStack, p0, ebvMax float64) *LOSParams {
	if p0 <= 0 {
		panic("LOSParams: p0 must be positive.")
	}
	if ebvMax < 0 {
		panic("LOSParams: EBV_max must be non-negative.")
	}
	return &LOSParams{
		Stack:  stack,
		P0:     p0,
		LnP0:   math.Log(p0),
		EBVMax: ebvMax,
	}
}
