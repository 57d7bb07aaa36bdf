package geometry

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r, err := New(3, 5, 11, 11)
	require.NoError(t, err)
	assert.Equal(t, 3, r.X1())
	assert.Equal(t, 5, r.Y1())
	assert.Equal(t, 11, r.X2())
	assert.Equal(t, 11, r.Y2())

	_, err = New(0, 0, 0, 0)
	assert.NoError(t, err)
}

func TestNew_RejectsInvertedCorners(t *testing.T) {
	cases := [][4]int{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{5, 5, 4, 4},
		{-1, 3, -2, 4},
		{math.MaxInt, 0, math.MinInt, 0},
	}
	for _, c := range cases {
		r, err := New(c[0], c[1], c[2], c[3])
		assert.ErrorIs(t, err, ErrInvalidGeometry, "%v", c)
		assert.Equal(t, Rectangle{}, r)
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { MustNew(2, 0, 1, 0) })
	assert.NotPanics(t, func() { MustNew(1, 0, 2, 0) })
}

func TestAreaWidthHeight(t *testing.T) {
	point := MustNew(0, 0, 0, 0)
	assert.Equal(t, int64(1), point.Area())
	assert.Equal(t, 0, point.Width())
	assert.Equal(t, 0, point.Height())

	square := MustNew(0, 0, 1, 1)
	assert.Equal(t, int64(4), square.Area())
	assert.Equal(t, 1, square.Width())
	assert.Equal(t, 1, square.Height())

	a := MustNew(3, 5, 11, 11)
	assert.Equal(t, int64(63), a.Area())
	assert.Equal(t, 8, a.Width())
	assert.Equal(t, 6, a.Height())

	line := MustNew(-2, 4, 7, 4)
	assert.Equal(t, int64(10), line.Area())
}

func TestArea_CoordinateBounds(t *testing.T) {
	plane := MustNew(MinCoordinate, MinCoordinate, MaxCoordinate, MaxCoordinate)
	assert.Equal(t, 1<<31-1, plane.Width())
	assert.Equal(t, 1<<31-1, plane.Height())
	assert.Equal(t, int64(1)<<62, plane.Area())
	assert.Equal(t, int64(1)<<62, IntersectionArea(plane, plane))

	strip := MustNew(MinCoordinate, 0, MaxCoordinate, 0)
	assert.Equal(t, int64(1)<<31, strip.Area())
}

func TestNew_RejectsOutOfRangeCoordinates(t *testing.T) {
	cases := [][4]int{
		{MinCoordinate - 1, 0, 0, 0},
		{0, MinCoordinate - 1, 0, 0},
		{0, 0, MaxCoordinate + 1, 0},
		{0, 0, 0, MaxCoordinate + 1},
		{math.MinInt, 0, math.MaxInt, 0},
	}
	for _, c := range cases {
		_, err := New(c[0], c[1], c[2], c[3])
		assert.ErrorIs(t, err, ErrInvalidGeometry, "%v", c)
	}

	_, err := Parse("0,0,4294967296,4294967296")
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	r := MustNew(0, 0, 1, 1)
	assert.ErrorIs(t, r.SetX2(MaxCoordinate+1), ErrInvalidGeometry)
	assert.Equal(t, MustNew(0, 0, 1, 1), r)

	var decoded Rectangle
	assert.ErrorIs(t, decoded.UnmarshalJSON([]byte(`{"x1":0,"y1":0,"x2":1073741824,"y2":0}`)), ErrInvalidGeometry)
}

func TestContains(t *testing.T) {
	r := MustNew(3, 5, 11, 11)

	assert.True(t, r.Contains(3, 5))
	assert.True(t, r.Contains(11, 11))
	assert.True(t, r.Contains(7, 8))
	assert.True(t, r.Contains(3, 11))
	assert.False(t, r.Contains(2, 5))
	assert.False(t, r.Contains(12, 11))
	assert.False(t, r.Contains(7, 4))
	assert.False(t, r.Contains(7, 12))
}

func TestSetters(t *testing.T) {
	r := MustNew(0, 0, 10, 10)

	require.NoError(t, r.SetX1(2))
	require.NoError(t, r.SetY1(3))
	require.NoError(t, r.SetX2(4))
	require.NoError(t, r.SetY2(5))
	assert.Equal(t, MustNew(2, 3, 4, 5), r)

	require.NoError(t, r.SetX1(4))
	assert.Equal(t, 0, r.Width())
}

func TestSetters_FailureLeavesRectangleUnchanged(t *testing.T) {
	orig := MustNew(0, 0, 10, 10)

	setters := map[string]func(*Rectangle) error{
		"x1": func(r *Rectangle) error { return r.SetX1(11) },
		"y1": func(r *Rectangle) error { return r.SetY1(11) },
		"x2": func(r *Rectangle) error { return r.SetX2(-1) },
		"y2": func(r *Rectangle) error { return r.SetY2(-1) },
	}

	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			r := orig
			err := set(&r)
			assert.ErrorIs(t, err, ErrInvalidGeometry)
			assert.Equal(t, orig, r)
			assert.LessOrEqual(t, r.X1(), r.X2())
			assert.LessOrEqual(t, r.Y1(), r.Y2())
		})
	}
}

func TestSetters_InvariantHoldsAcrossSequence(t *testing.T) {
	r := MustNew(0, 0, 0, 0)
	steps := []int{5, -3, 8, 2, -7, 0, 9, -1, 4, 4, -9, 6}

	for i, v := range steps {
		switch i % 4 {
		case 0:
			_ = r.SetX2(v)
		case 1:
			_ = r.SetX1(v)
		case 2:
			_ = r.SetY2(v)
		case 3:
			_ = r.SetY1(v)
		}
		assert.LessOrEqual(t, r.X1(), r.X2(), "step %d", i)
		assert.LessOrEqual(t, r.Y1(), r.Y2(), "step %d", i)
	}
}

func TestWith(t *testing.T) {
	r := MustNew(0, 0, 10, 10)

	moved, err := r.WithX1(5)
	require.NoError(t, err)
	assert.Equal(t, MustNew(5, 0, 10, 10), moved)
	assert.Equal(t, 0, r.X1())

	_, err = r.WithY2(-1)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	_, err = r.WithX2(-1)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	moved, err = r.WithY1(10)
	require.NoError(t, err)
	assert.Equal(t, 0, moved.Height())
}

func TestCopyAndClone(t *testing.T) {
	r := MustNew(1, 2, 3, 4)

	c, err := Copy(&r)
	require.NoError(t, err)
	assert.True(t, c.Equal(r))

	_, err = Copy(nil)
	assert.ErrorIs(t, err, ErrNilSource)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	clone := r.Clone()
	assert.True(t, clone.Equal(r))
	require.NoError(t, clone.SetX2(30))
	assert.Equal(t, 3, r.X2())
	assert.False(t, clone.Equal(r))
}

func TestEqualAndHash(t *testing.T) {
	a := MustNew(3, 5, 11, 11)
	b := MustNew(3, 5, 11, 11)
	c := MustNew(5, 3, 11, 11)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())

	seen := map[Rectangle]bool{a: true}
	assert.True(t, seen[b])
}

func TestString(t *testing.T) {
	assert.Equal(t, "Rectangle[(3,5),(11,11)]", MustNew(3, 5, 11, 11).String())
	assert.Equal(t, "Rectangle[(-4,-2),(0,0)]", MustNew(-4, -2, 0, 0).String())
}

func TestParse(t *testing.T) {
	r, err := Parse("3, 5,11 ,11")
	require.NoError(t, err)
	assert.Equal(t, MustNew(3, 5, 11, 11), r)

	for _, in := range []string{"", "1,2,3", "1,2,3,4,5", "a,b,c,d", "4,0,3,0"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidGeometry, in)
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(MustNew(7, 2, 13, 7))
	require.NoError(t, err)
	assert.JSONEq(t, `{"x1":7,"y1":2,"x2":13,"y2":7}`, string(data))

	var r Rectangle
	require.NoError(t, json.Unmarshal([]byte(`{"x1":1,"y1":1,"x2":2,"y2":2}`), &r))
	assert.Equal(t, MustNew(1, 1, 2, 2), r)

	before := r
	err = json.Unmarshal([]byte(`{"x1":3,"y1":1,"x2":2,"y2":2}`), &r)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	assert.Equal(t, before, r)

	err = json.Unmarshal([]byte(`{"x1":3,"y1":1}`), &r)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}
