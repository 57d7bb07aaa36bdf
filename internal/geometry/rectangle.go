// Package geometry implements axis-aligned rectangles on a discrete integer
// grid. Corners are inclusive: every grid point on the boundary belongs to
// the rectangle, so a rectangle collapsed to a single point covers one cell.
package geometry

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Coordinates are limited to half the int32 range, so Width and Height fit in
// an int on every platform and Area fits in an int64.
const (
	MinCoordinate = -1 << 30
	MaxCoordinate = 1<<30 - 1
)

var (
	ErrInvalidGeometry = errors.New("invalid rectangle coordinates")
	ErrNilSource       = fmt.Errorf("%w: source rectangle is nil", ErrInvalidGeometry)
)

// Rectangle is defined by its lower-left (x1, y1) and upper-right (x2, y2)
// corners. The zero value is the single point at the origin.
type Rectangle struct {
	x1, y1, x2, y2 int
}

// New returns a rectangle or ErrInvalidGeometry when x1 > x2, y1 > y2 or a
// coordinate lies outside [MinCoordinate, MaxCoordinate].
func New(x1, y1, x2, y2 int) (Rectangle, error) {
	if err := validate(x1, y1, x2, y2); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{x1: x1, y1: y1, x2: x2, y2: y2}, nil
}

// MustNew is like New but panics on invalid coordinates.
func MustNew(x1, y1, x2, y2 int) Rectangle {
	r, err := New(x1, y1, x2, y2)
	if err != nil {
		panic(err)
	}
	return r
}

// Copy returns an independent copy of src.
func Copy(src *Rectangle) (Rectangle, error) {
	if src == nil {
		return Rectangle{}, ErrNilSource
	}
	return New(src.x1, src.y1, src.x2, src.y2)
}

func validate(x1, y1, x2, y2 int) error {
	for _, v := range [...]int{x1, y1, x2, y2} {
		if v < MinCoordinate || v > MaxCoordinate {
			return fmt.Errorf("%w: coordinate %d outside [%d, %d]", ErrInvalidGeometry, v, MinCoordinate, MaxCoordinate)
		}
	}
	if x1 > x2 || y1 > y2 {
		return fmt.Errorf("%w: (%d,%d),(%d,%d)", ErrInvalidGeometry, x1, y1, x2, y2)
	}
	return nil
}

// X1 is the left edge.
func (r Rectangle) X1() int { return r.x1 }

// Y1 is the bottom edge.
func (r Rectangle) Y1() int { return r.y1 }

// X2 is the right edge.
func (r Rectangle) X2() int { return r.x2 }

// Y2 is the top edge.
func (r Rectangle) Y2() int { return r.y2 }

// Width is the distance between the x corners, not the number of columns covered.
func (r Rectangle) Width() int { return r.x2 - r.x1 }

// Height is the distance between the y corners.
func (r Rectangle) Height() int { return r.y2 - r.y1 }

// Area counts covered unit cells, boundaries included.
func (r Rectangle) Area() int64 {
	return (int64(r.x2) - int64(r.x1) + 1) * (int64(r.y2) - int64(r.y1) + 1)
}

// Contains reports whether (x, y) lies inside or on the edge of r.
func (r Rectangle) Contains(x, y int) bool {
	return x >= r.x1 && x <= r.x2 && y >= r.y1 && y <= r.y2
}

// set validates the candidate coordinates and commits them only on success.
func (r *Rectangle) set(x1, y1, x2, y2 int) error {
	if err := validate(x1, y1, x2, y2); err != nil {
		return err
	}
	*r = Rectangle{x1: x1, y1: y1, x2: x2, y2: y2}
	return nil
}

// SetX1 moves the left edge. r is left untouched on error.
func (r *Rectangle) SetX1(x1 int) error { return r.set(x1, r.y1, r.x2, r.y2) }

// SetY1 moves the bottom edge. r is left untouched on error.
func (r *Rectangle) SetY1(y1 int) error { return r.set(r.x1, y1, r.x2, r.y2) }

// SetX2 moves the right edge. r is left untouched on error.
func (r *Rectangle) SetX2(x2 int) error { return r.set(r.x1, r.y1, x2, r.y2) }

// SetY2 moves the top edge. r is left untouched on error.
func (r *Rectangle) SetY2(y2 int) error { return r.set(r.x1, r.y1, r.x2, y2) }

// WithX1 returns a copy of r with a new left edge.
func (r Rectangle) WithX1(x1 int) (Rectangle, error) { return New(x1, r.y1, r.x2, r.y2) }

// WithY1 returns a copy of r with a new bottom edge.
func (r Rectangle) WithY1(y1 int) (Rectangle, error) { return New(r.x1, y1, r.x2, r.y2) }
// WithX2 returns a copy of r with a new right edge.
func (r Rectangle) WithX2(x2 int) (Rectangle, error) { return New(r.x1, r.y1, x2, r.y2) }
// WithY2 returns a copy of r with a new top edge.
func (r Rectangle) WithY2(y2 int) (Rectangle, error) { return New(r.x1, r.y1, r.x2, y2) }

// Clone returns a value-equal rectangle that shares nothing with r.
func (r Rectangle) Clone() Rectangle {
	return r
}

// Equal reports whether all four coordinates match.
func (r Rectangle) Equal(other Rectangle) bool {
	return r == other
}

// Hash is derived from the four coordinates only.
func (r Rectangle) Hash() uint64 {
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[0:], uint64(int64(r.x1)))
	binary.BigEndian.PutUint64(buf[8:], uint64(int64(r.y1)))
	binary.BigEndian.PutUint64(buf[16:], uint64(int64(r.x2)))
	binary.BigEndian.PutUint64(buf[24:], uint64(int64(r.y2)))
	return xxhash.Sum64(buf[:])
}

// String renders r as Rectangle[(x1,y1),(x2,y2)].
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle[(%d,%d),(%d,%d)]", r.x1, r.y1, r.x2, r.y2)
}

// Parse reads "x1,y1,x2,y2". Whitespace around each number is ignored.
func Parse(s string) (Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Rectangle{}, fmt.Errorf("%w: expected x1,y1,x2,y2, got %q", ErrInvalidGeometry, s)
	}

	var coords [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Rectangle{}, fmt.Errorf("%w: coordinate %q is not an integer", ErrInvalidGeometry, p)
		}
		coords[i] = n
	}

	return New(coords[0], coords[1], coords[2], coords[3])
}

type rectangleJSON struct {
	X1 *int `json:"x1"`
	Y1 *int `json:"y1"`
	X2 *int `json:"x2"`
	Y2 *int `json:"y2"`
}

// MarshalJSON encodes r as {"x1":..,"y1":..,"x2":..,"y2":..}.
func (r Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(rectangleJSON{X1: &r.x1, Y1: &r.y1, X2: &r.x2, Y2: &r.y2})
}

// UnmarshalJSON requires all four coordinates and re-checks the invariant.
func (r *Rectangle) UnmarshalJSON(data []byte) error {
	var raw rectangleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.X1 == nil || raw.Y1 == nil || raw.X2 == nil || raw.Y2 == nil {
		return fmt.Errorf("%w: x1, y1, x2 and y2 are required", ErrInvalidGeometry)
	}
	return r.set(*raw.X1, *raw.Y1, *raw.X2, *raw.Y2)
}
