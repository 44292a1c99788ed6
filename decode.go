package stgeometry

import "github.com/paulmach/orb"

// maxPartInfoVarints bounds the opaque part-info skip loop so a corrupt
// blob with no absolute coordinate ever present fails fast instead of
// scanning to the end of an arbitrarily large buffer.
const maxPartInfoVarints = 100_000

// Decode parses an ST_Geometry blob into a typed Geometry, converting
// coordinates through crs. A nil opts uses DefaultOptions().
func Decode(blob []byte, crs CRSFrame, opts *Options) (Geometry, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	threshold := opts.AbsoluteThreshold
	if threshold == 0 {
		threshold = AbsoluteThreshold
	}

	r := newVarintReader(blob)

	if err := r.readTag(Magic[:]); err != nil {
		return nil, err
	}

	pointCount, err := r.readUint32LE()
	if err != nil {
		return nil, err
	}

	if _, err := r.readVarint(); err != nil { // size_hint: informational, not trusted
		return nil, err
	}

	geomFlags, err := r.readVarint()
	if err != nil {
		return nil, err
	}

	kind, hasZ, err := classifyGeometryFlags(geomFlags, r.pos)
	if err != nil {
		return nil, err
	}

	if pointCount == 0 {
		return nil, newDecodeError(EmptyGeometry, r.pos)
	}

	if kind == KindPoint {
		point, err := decodePoint(r, crs, hasZ, threshold)
		if err != nil {
			return nil, err
		}
		if opts.Strict && r.remaining() > 0 {
			return nil, newDecodeError(TrailingBytes, r.pos)
		}
		return point, nil
	}

	return decodeNonPoint(r, crs, kind, hasZ, int(pointCount), threshold, opts.Strict)
}

// decodePoint reads a lone geometry: an absolute (x, y) pair, optionally
// followed by one absolute z. Real-world blobs carry a short run of small
// padding varints between geom_flags and the coordinate pair; the point
// path skips this the same way the non-point path's bounding-box skip
// finds its first coordinate, since a point has no bounding box of its
// own to read first.
func decodePoint(r *varintReader, crs CRSFrame, hasZ bool, threshold int64) (Geometry, error) {
	xRaw, err := skipPartInfo(r, threshold)
	if err != nil {
		return nil, err
	}
	yRawU, err := r.readVarint()
	if err != nil {
		return nil, err
	}

	x, y := crs.ToReal(xRaw, int64(yRawU))
	p := Point{X: x, Y: y}

	if hasZ {
		zRaw, err := r.readVarint()
		if err != nil {
			return nil, err
		}
		z := crs.ToRealZ(int64(zRaw))
		p.Z = &z
	}
	return p, nil
}

// decodeNonPoint reads the bounding box, skips the part-info region, then
// dispatches to the shape-specific coordinate reader.
func decodeNonPoint(r *varintReader, crs CRSFrame, kind GeometryKind, hasZ bool, pointCount int, threshold int64, strict bool) (Geometry, error) {
	for i := 0; i < 4; i++ { // xmin, ymin, xmax, ymax: consumed, not trusted
		if _, err := r.readVarint(); err != nil {
			return nil, err
		}
	}

	firstXRaw, err := skipPartInfo(r, threshold)
	if err != nil {
		return nil, err
	}

	firstYRawU, err := r.readVarint()
	if err != nil {
		return nil, err
	}
	firstYRaw := int64(firstYRawU)

	var geometry Geometry
	switch kind {
	case KindMultiPoint:
		geometry, err = decodeMultiPoint(r, crs, hasZ, pointCount, firstXRaw, firstYRaw)
	case KindPolyline, KindPolygon:
		geometry, err = decodePartitioned(r, crs, kind, hasZ, pointCount, threshold, firstXRaw, firstYRaw)
	default:
		return nil, newDecodeError(UnsupportedGeometryKind, r.pos)
	}
	if err != nil {
		return nil, err
	}

	if strict && r.remaining() > 0 {
		return nil, newDecodeError(TrailingBytes, r.pos)
	}
	return geometry, nil
}

// skipPartInfo discards varints below threshold one at a time until it
// finds the first at or above it, which is the first X coordinate.
func skipPartInfo(r *varintReader, threshold int64) (int64, error) {
	for i := 0; i < maxPartInfoVarints; i++ {
		if r.remaining() == 0 {
			break
		}
		v, err := r.readVarint()
		if err != nil {
			return 0, err
		}
		if int64(v) >= threshold {
			return int64(v), nil
		}
	}
	return 0, newDecodeError(InvalidCoordinateStream, r.pos)
}

// decodeMultiPoint reads pointCount-1 remaining pairs as absolute
// coordinates. MultiPoint carries no delta encoding and no part
// segmentation; every pair stands on its own.
func decodeMultiPoint(r *varintReader, crs CRSFrame, hasZ bool, pointCount int, firstXRaw, firstYRaw int64) (Geometry, error) {
	rawXs := make([]int64, pointCount)
	rawYs := make([]int64, pointCount)
	rawXs[0], rawYs[0] = firstXRaw, firstYRaw

	for i := 1; i < pointCount; i++ {
		xRaw, err := r.readVarint()
		if err != nil {
			return nil, err
		}
		yRaw, err := r.readVarint()
		if err != nil {
			return nil, err
		}
		rawXs[i], rawYs[i] = int64(xRaw), int64(yRaw)
	}

	zs, err := readZStream(r, hasZ, pointCount)
	if err != nil {
		return nil, err
	}

	points := make([]Point, pointCount)
	for i := 0; i < pointCount; i++ {
		x, y := crs.ToReal(rawXs[i], rawYs[i])
		points[i] = Point{X: x, Y: y}
		if hasZ {
			z := crs.ToRealZ(zs[i])
			points[i].Z = &z
		}
	}
	return MultiPoint{Points: points}, nil
}

// decodePartitioned reads pointCount-1 remaining pairs through a
// partSegmenter and assembles the result into a LineString, MultiLineString,
// or Polygon depending on shape and how many parts the stream split into.
func decodePartitioned(r *varintReader, crs CRSFrame, kind GeometryKind, hasZ bool, pointCount int, threshold, firstXRaw, firstYRaw int64) (Geometry, error) {
	seg := newPartSegmenter(threshold, firstXRaw, firstYRaw)

	for i := 1; i < pointCount; i++ {
		v1, err := r.readVarint()
		if err != nil {
			return nil, err
		}
		v2, err := r.readVarint()
		if err != nil {
			return nil, err
		}
		seg.push(v1, v2)
	}

	rawParts := seg.finish()

	zs, err := readZStream(r, hasZ, pointCount)
	if err != nil {
		return nil, err
	}

	zIdx := 0
	orbParts := make([][]orb.Point, len(rawParts))
	zParts := make([][]float64, len(rawParts))
	for pi, p := range rawParts {
		pts := make([]orb.Point, len(p.coords))
		var zvals []float64
		if hasZ {
			zvals = make([]float64, len(p.coords))
		}
		for ci, c := range p.coords {
			x, y := crs.ToReal(c.x, c.y)
			pts[ci] = orb.Point{x, y}
			if hasZ {
				zvals[ci] = crs.ToRealZ(zs[zIdx])
				zIdx++
			}
		}
		orbParts[pi] = pts
		zParts[pi] = zvals
	}

	switch kind {
	case KindPolyline:
		if len(orbParts) == 1 {
			return newLineString(orbParts[0], zParts[0]), nil
		}
		lines := make([]LineString, len(orbParts))
		for i := range orbParts {
			lines[i] = newLineString(orbParts[i], zParts[i])
		}
		return MultiLineString{Lines: lines}, nil

	case KindPolygon:
		rings := make([]orb.Ring, len(orbParts))
		for i, pts := range orbParts {
			rings[i] = orb.Ring(pts)
		}
		var zRings [][]float64
		if hasZ {
			zRings = zParts
		}
		return newPolygon(rings, zRings), nil
	}

	return nil, newDecodeError(UnsupportedGeometryKind, r.pos)
}

// readZStream reads pointCount varints: the first absolute, the rest
// zigzag deltas accumulated onto a running Z. Any shortfall is reported as
// TruncatedZStream regardless of the underlying varint failure.
func readZStream(r *varintReader, hasZ bool, pointCount int) ([]int64, error) {
	if !hasZ {
		return nil, nil
	}

	zs := make([]int64, pointCount)

	first, err := r.readVarint()
	if err != nil {
		return nil, &DecodeError{Kind: TruncatedZStream, Offset: r.pos, Err: ErrTruncatedZStream}
	}
	curZ := int64(first)
	zs[0] = curZ

	for i := 1; i < pointCount; i++ {
		v, err := r.readVarint()
		if err != nil {
			return nil, &DecodeError{Kind: TruncatedZStream, Offset: r.pos, Err: ErrTruncatedZStream}
		}
		curZ += zigzagDecode(v)
		zs[i] = curZ
	}
	return zs, nil
}
