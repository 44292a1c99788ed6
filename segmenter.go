package stgeometry

// coordPair is a raw (not-yet-converted-to-real) integer coordinate. Delta
// accumulation happens entirely in this integer domain; conversion to real
// values happens only at emission, so rounding never compounds across a
// long run of deltas.
type coordPair struct {
	x, y int64
}

// part is a contiguous run of points forming one line or one ring.
type part struct {
	coords []coordPair
}

type partState int

const (
	prevWasAbsolute partState = iota
	prevWasDelta
)

// partSegmenter walks a stream of (x, y) integer pairs and splits them into
// parts using the consecutive-absolute-pair rule: two absolute pairs read
// back-to-back mark a part boundary between them. An absolute pair that
// follows a delta is treated as a positional jump, not a boundary. The rule
// is applied literally, with no length-based refinement — see DESIGN.md's
// Open Question 2.
type partSegmenter struct {
	threshold  int64
	state      partState
	curX, curY int64
	parts      []part
	current    part
}

// newPartSegmenter seeds the segmenter with the first, already-absolute
// coordinate of the geometry, placed before segmentation begins so the
// first consecutive-absolute check has something to compare against.
func newPartSegmenter(threshold, startX, startY int64) *partSegmenter {
	s := &partSegmenter{
		threshold: threshold,
		state:     prevWasAbsolute,
		curX:      startX,
		curY:      startY,
	}
	s.current.coords = append(s.current.coords, coordPair{startX, startY})
	return s
}

// push consumes one raw (v1, v2) varint pair.
func (s *partSegmenter) push(v1, v2 uint64) {
	rawX := int64(v1)

	if rawX >= s.threshold {
		s.curX, s.curY = rawX, int64(v2)

		if s.state == prevWasAbsolute {
			s.parts = append(s.parts, s.current)
			s.current = part{coords: []coordPair{{s.curX, s.curY}}}
		} else {
			s.current.coords = append(s.current.coords, coordPair{s.curX, s.curY})
		}
		s.state = prevWasAbsolute
		return
	}

	dx := zigzagDecode(v1)
	dy := zigzagDecode(v2)
	s.curX += dx
	s.curY += dy
	s.current.coords = append(s.current.coords, coordPair{s.curX, s.curY})
	s.state = prevWasDelta
}

// finish closes the final part and returns every part produced, in the
// order their first coordinate was read.
func (s *partSegmenter) finish() []part {
	if len(s.current.coords) > 0 {
		s.parts = append(s.parts, s.current)
	}
	return s.parts
}
