package stgeometry

// GeometryKind classifies the lower 4 bits of a blob's geom_flags varint
// into the small closed set of shapes the format supports.
type GeometryKind int

const (
	KindPoint      GeometryKind = 1
	KindMultiPoint GeometryKind = 2
	KindPolyline   GeometryKind = 4
	KindPolygon    GeometryKind = 8
)

func (k GeometryKind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindMultiPoint:
		return "MultiPoint"
	case KindPolyline:
		return "Polyline"
	case KindPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// hasZFlag is the upper modifier bit in geom_flags indicating Z coordinates
// follow the XY stream.
const hasZFlag = 0x40

// classifyGeometryFlags splits a geom_flags varint into its shape and
// has-Z modifier. It fails with UnsupportedGeometryKind if the lower 4
// bits are none of {1, 2, 4, 8}.
func classifyGeometryFlags(flags uint64, offset int) (GeometryKind, bool, error) {
	shape := GeometryKind(flags & 0x0F)
	hasZ := flags&hasZFlag != 0

	switch shape {
	case KindPoint, KindMultiPoint, KindPolyline, KindPolygon:
		return shape, hasZ, nil
	default:
		return 0, false, newDecodeError(UnsupportedGeometryKind, offset)
	}
}

// GeometryTypeCode is the geometry_type numbering stored in an Esri
// geodatabase's st_geometry_columns table. It is never read from a blob
// itself — the blob only carries the 4-bit shape and Z bit above — but a
// CRSResolver implementation resolving a table to a CRSFrame typically
// needs to interpret this same numbering, so it is exposed here as a
// convenience for that caller.
type GeometryTypeCode int

const (
	GeometryTypePoint           GeometryTypeCode = 1
	GeometryTypeLineString      GeometryTypeCode = 2
	GeometryTypePolygonCode     GeometryTypeCode = 3
	GeometryTypeMultiPoint      GeometryTypeCode = 4
	GeometryTypeMultiLineString GeometryTypeCode = 5
	GeometryTypeMultiPolygon    GeometryTypeCode = 6

	GeometryTypePointZ           GeometryTypeCode = 1001
	GeometryTypeLineStringZ      GeometryTypeCode = 1002
	GeometryTypePolygonZ         GeometryTypeCode = 1003
	GeometryTypeMultiPointZ      GeometryTypeCode = 1004
	GeometryTypeMultiLineStringZ GeometryTypeCode = 1005
	GeometryTypeMultiPolygonZ    GeometryTypeCode = 1006
)
