// Package stgeometry decodes the proprietary ST_Geometry binary blob format
// used inside Esri Mobile Geodatabase files. Given a blob and a coordinate
// reference frame, Decode reconstructs a typed Geometry value — a point,
// polyline, polygon, or their multi-part or Z-augmented variants — whose
// coordinates are expressed in the target CRS's real-world units.
//
// The package does not read SQLite tables, parse coordinate-system XML, or
// serialize geometries to WKT/WKB/GeoJSON; it consumes a ready-made blob and
// CRSFrame and produces an in-memory Geometry value. See CRSResolver and
// BlobSource for the narrow interfaces an external caller is expected to
// supply.
package stgeometry

import (
	"errors"
	"fmt"
)

// AbsoluteThreshold is the default magnitude above which a raw varint is
// classified as an absolute coordinate rather than opaque part-metadata.
// Valid absolute raw coordinates in the supported CRS families (Web Mercator
// and similar) always exceed this; valid metadata varints (counts, indices,
// byte offsets) are always far below it.
const AbsoluteThreshold = 100_000_000_000

// Magic is the required four-byte prefix of every ST_Geometry blob.
var Magic = [4]byte{0x64, 0x11, 0x0F, 0x00}

// ErrorKind classifies why a blob failed to decode.
type ErrorKind int

const (
	BadMagic ErrorKind = iota + 1
	Truncated
	VarintOverflow
	UnsupportedGeometryKind
	EmptyGeometry
	InvalidCoordinateStream
	TruncatedZStream
	TrailingBytes
)

func (k ErrorKind) String() string {
	switch k {
	case BadMagic:
		return "bad magic"
	case Truncated:
		return "truncated"
	case VarintOverflow:
		return "varint overflow"
	case UnsupportedGeometryKind:
		return "unsupported geometry kind"
	case EmptyGeometry:
		return "empty geometry"
	case InvalidCoordinateStream:
		return "invalid coordinate stream"
	case TruncatedZStream:
		return "truncated z stream"
	case TrailingBytes:
		return "trailing bytes"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per ErrorKind, so callers can compare with errors.Is
// without inspecting a DecodeError's Kind field.
var (
	ErrBadMagic                = errors.New("stgeometry: bad magic")
	ErrTruncated               = errors.New("stgeometry: truncated")
	ErrVarintOverflow          = errors.New("stgeometry: varint overflow")
	ErrUnsupportedGeometryKind = errors.New("stgeometry: unsupported geometry kind")
	ErrEmptyGeometry           = errors.New("stgeometry: empty geometry")
	ErrInvalidCoordinateStream = errors.New("stgeometry: invalid coordinate stream")
	ErrTruncatedZStream        = errors.New("stgeometry: truncated z stream")
	ErrTrailingBytes           = errors.New("stgeometry: trailing bytes")
)

func sentinelFor(k ErrorKind) error {
	switch k {
	case BadMagic:
		return ErrBadMagic
	case Truncated:
		return ErrTruncated
	case VarintOverflow:
		return ErrVarintOverflow
	case UnsupportedGeometryKind:
		return ErrUnsupportedGeometryKind
	case EmptyGeometry:
		return ErrEmptyGeometry
	case InvalidCoordinateStream:
		return ErrInvalidCoordinateStream
	case TruncatedZStream:
		return ErrTruncatedZStream
	case TrailingBytes:
		return ErrTrailingBytes
	default:
		return nil
	}
}

// DecodeError is the single closed error type returned by Decode. Offset is
// the byte position in the blob at which the failure was detected.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("stgeometry: %s at offset %d", e.Kind, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(kind ErrorKind, offset int) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Err: sentinelFor(kind)}
}

// Options configures a single Decode call.
type Options struct {
	// Strict, when true, fails with ErrTrailingBytes if bytes remain after
	// a successful decode. Off by default: many real-world blobs carry
	// trailing padding that is safe to ignore.
	Strict bool

	// AbsoluteThreshold overrides AbsoluteThreshold for CRS families whose
	// coordinate magnitudes don't fall comfortably above the default.
	AbsoluteThreshold int64
}

// DefaultOptions returns the default decode options: non-strict, using the
// package's default AbsoluteThreshold.
func DefaultOptions() *Options {
	return &Options{
		AbsoluteThreshold: AbsoluteThreshold,
	}
}
