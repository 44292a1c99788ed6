package stgeometry

import "github.com/paulmach/orb"

func mustOrbPoint(x, y float64) orb.Point {
	return orb.Point{x, y}
}

// appendVarint is the test-only mirror of the decoder's varint reader: it
// encodes v as a base-128 little-endian varint appended to buf.
func appendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

func appendUint32LE(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// blobBuilder assembles a synthetic ST_Geometry blob one field at a time,
// for tests that need control over the byte layout without hand-writing
// hex literals.
type blobBuilder struct {
	buf []byte
}

func newBlobBuilder() *blobBuilder {
	return &blobBuilder{buf: append([]byte{}, Magic[:]...)}
}

func (b *blobBuilder) pointCount(n uint32) *blobBuilder {
	b.buf = appendUint32LE(b.buf, n)
	return b
}

func (b *blobBuilder) varint(v uint64) *blobBuilder {
	b.buf = appendVarint(b.buf, v)
	return b
}

func (b *blobBuilder) zigzag(delta int64) *blobBuilder {
	b.buf = appendVarint(b.buf, zigzagEncode(delta))
	return b
}

func (b *blobBuilder) bytes() []byte {
	return b.buf
}
