package stgeometry

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/twpayne/go-geom"
)

func TestPointBoundsAndHasZ(t *testing.T) {
	p := Point{X: 1, Y: 2}
	if p.HasZ() {
		t.Error("Point without Z reports HasZ() true")
	}
	if got := p.Bounds(); got.Min != (orb.Point{1, 2}) || got.Max != (orb.Point{1, 2}) {
		t.Errorf("Bounds() = %v, want a degenerate bound at (1,2)", got)
	}

	z := 3.5
	pz := Point{X: 1, Y: 2, Z: &z}
	if !pz.HasZ() {
		t.Error("Point with Z reports HasZ() false")
	}
}

func TestPointToGeomT(t *testing.T) {
	g, err := (Point{X: 1, Y: 2}).ToGeomT()
	if err != nil {
		t.Fatalf("ToGeomT: unexpected error %v", err)
	}
	pt, ok := g.(*geom.Point)
	if !ok {
		t.Fatalf("ToGeomT returned %T, want *geom.Point", g)
	}
	if pt.Layout() != geom.XY {
		t.Errorf("layout = %v, want XY", pt.Layout())
	}

	z := 9.0
	g, err = (Point{X: 1, Y: 2, Z: &z}).ToGeomT()
	if err != nil {
		t.Fatalf("ToGeomT: unexpected error %v", err)
	}
	pt = g.(*geom.Point)
	if pt.Layout() != geom.XYZ {
		t.Errorf("layout = %v, want XYZ", pt.Layout())
	}
	if pt.Coords()[2] != 9.0 {
		t.Errorf("z coordinate = %v, want 9.0", pt.Coords()[2])
	}
}

func TestLineStringBoundsAndZ(t *testing.T) {
	pts := []orb.Point{{0, 0}, {10, 0}, {10, 10}}
	l := newLineString(pts, nil)
	if l.HasZ() {
		t.Error("LineString with no Z values reports HasZ() true")
	}
	b := l.Bounds()
	if b.Min != (orb.Point{0, 0}) || b.Max != (orb.Point{10, 10}) {
		t.Errorf("Bounds() = %v, want [0,0]-[10,10]", b)
	}

	lz := newLineString(pts, []float64{1, 2, 3})
	if !lz.HasZ() {
		t.Error("LineString with Z values reports HasZ() false")
	}
	g, err := lz.ToGeomT()
	if err != nil {
		t.Fatalf("ToGeomT: unexpected error %v", err)
	}
	ls := g.(*geom.LineString)
	if ls.Layout() != geom.XYZ {
		t.Errorf("layout = %v, want XYZ", ls.Layout())
	}
}

func TestPolygonBoundsAndRings(t *testing.T) {
	exterior := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	hole := orb.Ring{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}}
	poly := newPolygon([]orb.Ring{exterior, hole}, nil)

	if len(poly.Orb()) != 2 {
		t.Fatalf("Orb() has %d rings, want 2", len(poly.Orb()))
	}
	b := poly.Bounds()
	if b.Min != (orb.Point{0, 0}) || b.Max != (orb.Point{10, 10}) {
		t.Errorf("Bounds() = %v, want [0,0]-[10,10]", b)
	}
}

func TestPolygonZToGeomT(t *testing.T) {
	exterior := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 0}}
	z := [][]float64{{1, 2, 3, 1}}
	poly := newPolygon([]orb.Ring{exterior}, z)
	if !poly.HasZ() {
		t.Fatal("PolygonZ reports HasZ() false")
	}
	g, err := poly.ToGeomT()
	if err != nil {
		t.Fatalf("ToGeomT: unexpected error %v", err)
	}
	gp := g.(*geom.Polygon)
	if gp.Layout() != geom.XYZ {
		t.Errorf("layout = %v, want XYZ", gp.Layout())
	}
}

func TestMultiPointHasZWhenAnyPointDoes(t *testing.T) {
	z := 5.0
	mp := MultiPoint{Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 1, Z: &z}}}
	if !mp.HasZ() {
		t.Error("MultiPoint.HasZ() = false, want true when any point carries Z")
	}
	if len(mp.Orb()) != 2 {
		t.Errorf("Orb() has %d points, want 2", len(mp.Orb()))
	}
}

func TestMultiLineStringBounds(t *testing.T) {
	l1 := newLineString([]orb.Point{{0, 0}, {1, 1}}, nil)
	l2 := newLineString([]orb.Point{{5, 5}, {6, 6}}, nil)
	mls := MultiLineString{Lines: []LineString{l1, l2}}
	b := mls.Bounds()
	if b.Min != (orb.Point{0, 0}) || b.Max != (orb.Point{6, 6}) {
		t.Errorf("Bounds() = %v, want [0,0]-[6,6]", b)
	}
}

func TestMultiPolygonHasZ(t *testing.T) {
	ring := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}}
	withZ := newPolygon([]orb.Ring{ring}, [][]float64{{1, 1, 1, 1}})
	withoutZ := newPolygon([]orb.Ring{ring}, nil)

	mp := MultiPolygon{Polygons: []Polygon{withoutZ, withZ}}
	if !mp.HasZ() {
		t.Error("MultiPolygon.HasZ() = false, want true when any polygon carries Z")
	}
}

func TestGeometryInterfaceSatisfiedByAllVariants(t *testing.T) {
	var variants = []Geometry{
		Point{X: 1, Y: 1},
		newLineString([]orb.Point{{0, 0}, {1, 1}}, nil),
		newPolygon([]orb.Ring{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}, nil),
		MultiPoint{Points: []Point{{X: 0, Y: 0}}},
		MultiLineString{Lines: []LineString{newLineString([]orb.Point{{0, 0}, {1, 1}}, nil)}},
		MultiPolygon{Polygons: []Polygon{newPolygon([]orb.Ring{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}, nil)}},
	}
	for _, g := range variants {
		if math.IsNaN(g.Bounds().Min[0]) {
			t.Errorf("%T.Bounds() produced NaN", g)
		}
	}
}
