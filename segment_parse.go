package intersect

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// MustParseSegments parses segments in SVG path notation and panics on error.
func MustParseSegments(s string) []Segment {
	segs, err := ParseSegments(s)
	if err != nil {
		panic(err)
	}
	return segs
}

// ParseSegments parses segments in SVG path notation, such as "M0 0L10 10M0 10L10 0". Every line drawn by the L, H, V, and Z commands (or their relative counterparts) becomes a segment, M moves without drawing. Curves are not supported.
func ParseSegments(s string) ([]Segment, error) {
	path := []byte(s)
	segs := []Segment{}

	var cmd byte
	var cur, start Point
	i := skipCommaWhitespace(path)
	for i < len(path) {
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if cmd == 0 {
			return nil, fmt.Errorf("bad path: expected command at %d", i)
		}

		switch cmd {
		case 'M', 'm', 'L', 'l':
			x, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("bad path: expected number at %d", i)
			}
			i += n
			y, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("bad path: expected number at %d", i)
			}
			i += n

			p := Point{x, y}
			if cmd == 'm' || cmd == 'l' {
				p = cur.Add(p)
			}
			if cmd == 'M' || cmd == 'm' {
				start = p
				if cmd == 'M' {
					cmd = 'L' // subsequent coordinate pairs are implicit line commands
				} else {
					cmd = 'l'
				}
			} else {
				segs = append(segs, Segment{cur, p})
			}
			cur = p
		case 'H', 'h', 'V', 'v':
			f, n := parseNum(path[i:])
			if n == 0 {
				return nil, fmt.Errorf("bad path: expected number at %d", i)
			}
			i += n

			p := cur
			switch cmd {
			case 'H':
				p.X = f
			case 'h':
				p.X += f
			case 'V':
				p.Y = f
			case 'v':
				p.Y += f
			}
			segs = append(segs, Segment{cur, p})
			cur = p
		case 'Z', 'z':
			if cur != start {
				segs = append(segs, Segment{cur, start})
			}
			cur = start
			cmd = 0
		default:
			return nil, fmt.Errorf("bad path: unsupported command '%c' at %d", cmd, i-1)
		}
		i += skipCommaWhitespace(path[i:])
	}
	return segs, nil
}
