package stgeometry

import "errors"

// ErrInvalidScale is returned by NewCRSFrame when XYScale is not positive.
var ErrInvalidScale = errors.New("stgeometry: xy_scale must be positive")

// CRSFrame is an immutable descriptor of the origin and scale used to
// convert raw integer coordinates from a decoded blob into real-world
// units. It is safe to share a single CRSFrame across concurrent Decode
// calls: it carries no mutable state.
//
// The effective scale applied to raw XY integers is XYScale*2 — an
// empirical property of the format; the source metadata stores half the
// true scale.
type CRSFrame struct {
	XOrigin, YOrigin, ZOrigin float64
	XYScale, ZScale           float64
}

// NewCRSFrame builds a CRSFrame, validating that XYScale is positive.
func NewCRSFrame(xOrigin, yOrigin, zOrigin, xyScale, zScale float64) (CRSFrame, error) {
	if xyScale <= 0 {
		return CRSFrame{}, ErrInvalidScale
	}
	return CRSFrame{
		XOrigin: xOrigin, YOrigin: yOrigin, ZOrigin: zOrigin,
		XYScale: xyScale, ZScale: zScale,
	}, nil
}

func (c CRSFrame) effectiveXYScale() float64 {
	return c.XYScale * 2
}

// ToReal converts a raw integer (x, y) pair into real-valued CRS units.
func (c CRSFrame) ToReal(rawX, rawY int64) (float64, float64) {
	scale := c.effectiveXYScale()
	x := float64(rawX)/scale + c.XOrigin
	y := float64(rawY)/scale + c.YOrigin
	return x, y
}

// ToRealZ converts a raw integer Z value into real-valued CRS units.
func (c CRSFrame) ToRealZ(rawZ int64) float64 {
	return float64(rawZ)/c.ZScale + c.ZOrigin
}
