package mapfile

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mapforge/mapforge/pkg/errors"
)

// Field counts for the two line forms: x, y, z, r, g, b, pointType, label
// for points; fx, fy, fz, tx, ty, tz, r, g, b for lines.
const (
	pointFieldCount = 8
	lineFieldCount  = 9
)

// Parser parses single map file lines into items. It owns the compiled
// field-separator pattern, so construct it once with NewParser and reuse it;
// a Parser is safe for concurrent use.
type Parser struct {
	separator *regexp.Regexp
}

// NewParser creates a parser for the map annotation line format.
func NewParser() *Parser {
	return &Parser{
		// Fields are separated by a comma followed by whitespace.
		separator: regexp.MustCompile(`,\s+`),
	}
}

// Parse parses one line into a MapItem. The first character selects the
// item kind ('P' or 'L') and must be followed by exactly one space and the
// comma-separated content fields. Any grammar violation returns an
// ErrCodeInvalidLine error; there is no partial recovery.
func (p *Parser) Parse(line string) (MapItem, error) {
	if line == "" {
		return nil, errors.New(errors.ErrCodeInvalidLine, "missing line identifier")
	}

	tag, content, ok := strings.Cut(line, " ")
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidLine, "no line content")
	}

	switch tag {
	case "P":
		return p.parsePoint(content)
	case "L":
		return p.parseLine(content)
	default:
		return nil, errors.New(errors.ErrCodeInvalidLine, "unrecognized line identifier %q", tag)
	}
}

func (p *Parser) parsePoint(content string) (MapItem, error) {
	fields := p.separator.Split(content, -1)
	if len(fields) != pointFieldCount {
		return nil, errors.New(errors.ErrCodeInvalidLine, "point line has %d fields, want %d", len(fields), pointFieldCount)
	}

	point, err := parsePoint(fields[0], fields[1], fields[2])
	if err != nil {
		return nil, err
	}
	color, err := parseColor(fields[3], fields[4], fields[5])
	if err != nil {
		return nil, err
	}
	// fields[6] is the point type marker, carried by the format but unused.
	return PointItem{Point: point, Color: color, Label: fields[7]}, nil
}

func (p *Parser) parseLine(content string) (MapItem, error) {
	fields := p.separator.Split(content, -1)
	if len(fields) != lineFieldCount {
		return nil, errors.New(errors.ErrCodeInvalidLine, "line has %d fields, want %d", len(fields), lineFieldCount)
	}

	from, err := parsePoint(fields[0], fields[1], fields[2])
	if err != nil {
		return nil, err
	}
	to, err := parsePoint(fields[3], fields[4], fields[5])
	if err != nil {
		return nil, err
	}
	color, err := parseColor(fields[6], fields[7], fields[8])
	if err != nil {
		return nil, err
	}

	return LineItem{From: from, To: to, Color: color}, nil
}

func parsePoint(x, y, z string) (Point, error) {
	px, err := parseCoord(x)
	if err != nil {
		return Point{}, err
	}
	py, err := parseCoord(y)
	if err != nil {
		return Point{}, err
	}
	pz, err := parseCoord(z)
	if err != nil {
		return Point{}, err
	}
	return Point{X: px, Y: py, Z: pz}, nil
}

// parseCoord parses a 32-bit float coordinate. Non-finite values are
// rejected so that bounding-box min/max comparisons form a total order.
func parseCoord(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidLine, "invalid coordinate %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New(errors.ErrCodeInvalidLine, "non-finite coordinate %q", s)
	}
	return float32(v), nil
}

func parseColor(r, g, b string) (Color, error) {
	cr, err := parseChannel(r)
	if err != nil {
		return Color{}, err
	}
	cg, err := parseChannel(g)
	if err != nil {
		return Color{}, err
	}
	cb, err := parseChannel(b)
	if err != nil {
		return Color{}, err
	}
	return Color{R: cr, G: cg, B: cb}, nil
}

func parseChannel(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidLine, "invalid color channel %q", s)
	}
	return uint8(v), nil
}
