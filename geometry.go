package stgeometry

import (
	"github.com/paulmach/orb"
	"github.com/twpayne/go-geom"
)

// Geometry is the tagged union over the shapes this package can decode.
// It is a closed set: Point, LineString, Polygon, MultiPoint,
// MultiLineString, MultiPolygon. Every variant reports whether it carries
// Z coordinates and produces its bounding box as an orb.Bound. The box is
// not cached: Bounds computes it from the variant's current XY coordinates
// on every call, and the bounding box stored in the blob is not used.
type Geometry interface {
	HasZ() bool
	Bounds() orb.Bound

	// ToGeomT converts the value to a github.com/twpayne/go-geom geometry,
	// using an XYZ layout when HasZ is true and XY otherwise.
	ToGeomT() (geom.T, error)

	geometryMarker()
}

// Point is a single 2D or 3D coordinate.
type Point struct {
	X, Y float64
	Z    *float64
}

func (p Point) HasZ() bool          { return p.Z != nil }
func (p Point) XY() orb.Point       { return orb.Point{p.X, p.Y} }
func (p Point) Bounds() orb.Bound   { return p.XY().Bound() }
func (Point) geometryMarker()       {}

func (p Point) ToGeomT() (geom.T, error) {
	if p.HasZ() {
		return geom.NewPoint(geom.XYZ).SetCoords(geom.Coord{p.X, p.Y, *p.Z})
	}
	return geom.NewPoint(geom.XY).SetCoords(geom.Coord{p.X, p.Y})
}

// LineString is an ordered sequence of coordinates, optionally carrying a
// parallel Z value per point.
type LineString struct {
	Points []orb.Point
	Z      []float64
	hasZ   bool
}

func newLineString(points []orb.Point, z []float64) LineString {
	return LineString{Points: points, Z: z, hasZ: len(z) > 0}
}

func (l LineString) HasZ() bool          { return l.hasZ }
func (l LineString) Orb() orb.LineString { return orb.LineString(l.Points) }
func (l LineString) Bounds() orb.Bound   { return l.Orb().Bound() }
func (l LineString) ZValues() []float64  { return l.Z }
func (LineString) geometryMarker()       {}

func (l LineString) ToGeomT() (geom.T, error) {
	layout := geom.XY
	if l.hasZ {
		layout = geom.XYZ
	}
	coords := make([]geom.Coord, len(l.Points))
	for i, p := range l.Points {
		if l.hasZ {
			coords[i] = geom.Coord{p[0], p[1], l.Z[i]}
		} else {
			coords[i] = geom.Coord{p[0], p[1]}
		}
	}
	return geom.NewLineString(layout).SetCoords(coords)
}

// Polygon is an ordered sequence of rings; by convention the first ring is
// the exterior and any remaining rings are holes. Z is indexed the same
// way as Rings when present.
type Polygon struct {
	Rings []orb.Ring
	Z     [][]float64
	hasZ  bool
}

func newPolygon(rings []orb.Ring, z [][]float64) Polygon {
	return Polygon{Rings: rings, Z: z, hasZ: len(z) > 0}
}

func (p Polygon) HasZ() bool         { return p.hasZ }
func (p Polygon) Orb() orb.Polygon   { return orb.Polygon(p.Rings) }
func (p Polygon) Bounds() orb.Bound  { return p.Orb().Bound() }
func (p Polygon) ZValues() [][]float64 { return p.Z }
func (Polygon) geometryMarker()      {}

func (p Polygon) ToGeomT() (geom.T, error) {
	layout := geom.XY
	if p.hasZ {
		layout = geom.XYZ
	}
	coords := make([][]geom.Coord, len(p.Rings))
	for i, ring := range p.Rings {
		rc := make([]geom.Coord, len(ring))
		for j, pt := range ring {
			if p.hasZ {
				rc[j] = geom.Coord{pt[0], pt[1], p.Z[i][j]}
			} else {
				rc[j] = geom.Coord{pt[0], pt[1]}
			}
		}
		coords[i] = rc
	}
	return geom.NewPolygon(layout).SetCoords(coords)
}

// MultiPoint is an unordered-by-format-but-emission-ordered collection of
// points.
type MultiPoint struct {
	Points []Point
}

func (m MultiPoint) HasZ() bool {
	for _, p := range m.Points {
		if p.HasZ() {
			return true
		}
	}
	return false
}

func (m MultiPoint) Orb() orb.MultiPoint {
	mp := make(orb.MultiPoint, len(m.Points))
	for i, p := range m.Points {
		mp[i] = p.XY()
	}
	return mp
}

func (m MultiPoint) Bounds() orb.Bound { return m.Orb().Bound() }
func (MultiPoint) geometryMarker()     {}

func (m MultiPoint) ToGeomT() (geom.T, error) {
	layout := geom.XY
	if m.HasZ() {
		layout = geom.XYZ
	}
	coords := make([]geom.Coord, len(m.Points))
	for i, p := range m.Points {
		if layout == geom.XYZ {
			z := 0.0
			if p.Z != nil {
				z = *p.Z
			}
			coords[i] = geom.Coord{p.X, p.Y, z}
		} else {
			coords[i] = geom.Coord{p.X, p.Y}
		}
	}
	return geom.NewMultiPoint(layout).SetCoords(coords)
}

// MultiLineString is an ordered sequence of LineStrings, produced when a
// Polyline-shaped blob segments into more than one part.
type MultiLineString struct {
	Lines []LineString
}

func (m MultiLineString) HasZ() bool {
	for _, l := range m.Lines {
		if l.HasZ() {
			return true
		}
	}
	return false
}

func (m MultiLineString) Orb() orb.MultiLineString {
	mls := make(orb.MultiLineString, len(m.Lines))
	for i, l := range m.Lines {
		mls[i] = l.Orb()
	}
	return mls
}

func (m MultiLineString) Bounds() orb.Bound { return m.Orb().Bound() }
func (MultiLineString) geometryMarker()     {}

func (m MultiLineString) ToGeomT() (geom.T, error) {
	layout := geom.XY
	if m.HasZ() {
		layout = geom.XYZ
	}
	coords := make([][]geom.Coord, len(m.Lines))
	for i, line := range m.Lines {
		lc := make([]geom.Coord, len(line.Points))
		for j, p := range line.Points {
			if layout == geom.XYZ {
				z := 0.0
				if line.hasZ {
					z = line.Z[j]
				}
				lc[j] = geom.Coord{p[0], p[1], z}
			} else {
				lc[j] = geom.Coord{p[0], p[1]}
			}
		}
		coords[i] = lc
	}
	return geom.NewMultiLineString(layout).SetCoords(coords)
}

// MultiPolygon is an ordered sequence of Polygons. Decode never emits
// MultiPolygon on its own — multi-ring polygons decode as a single Polygon
// with holes — but the type is part of the closed set so that a future
// ring-orientation pass could produce one.
type MultiPolygon struct {
	Polygons []Polygon
}

func (m MultiPolygon) HasZ() bool {
	for _, p := range m.Polygons {
		if p.HasZ() {
			return true
		}
	}
	return false
}

func (m MultiPolygon) Orb() orb.MultiPolygon {
	mp := make(orb.MultiPolygon, len(m.Polygons))
	for i, p := range m.Polygons {
		mp[i] = p.Orb()
	}
	return mp
}

func (m MultiPolygon) Bounds() orb.Bound { return m.Orb().Bound() }
func (MultiPolygon) geometryMarker()     {}

func (m MultiPolygon) ToGeomT() (geom.T, error) {
	layout := geom.XY
	if m.HasZ() {
		layout = geom.XYZ
	}
	coords := make([][][]geom.Coord, len(m.Polygons))
	for i, poly := range m.Polygons {
		pc := make([][]geom.Coord, len(poly.Rings))
		for j, ring := range poly.Rings {
			rc := make([]geom.Coord, len(ring))
			for k, pt := range ring {
				if layout == geom.XYZ {
					z := 0.0
					if poly.hasZ {
						z = poly.Z[j][k]
					}
					rc[k] = geom.Coord{pt[0], pt[1], z}
				} else {
					rc[k] = geom.Coord{pt[0], pt[1]}
				}
			}
			pc[j] = rc
		}
		coords[i] = pc
	}
	return geom.NewMultiPolygon(layout).SetCoords(coords)
}
