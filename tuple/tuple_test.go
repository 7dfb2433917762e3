package tuple_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maptuple/tuple"
)

func TestNew_FieldsInOrder(t *testing.T) {
	t.Parallel()

	p := tuple.New2(5, "hello")
	assert.Equal(t, 5, p.V1)
	assert.Equal(t, "hello", p.V2)

	q := tuple.New3(1, 2.5, true)
	assert.Equal(t, 1, q.V1)
	assert.Equal(t, 2.5, q.V2)
	assert.Equal(t, true, q.V3)
}

func TestUnpack(t *testing.T) {
	t.Parallel()

	a, b := tuple.New2(5, "hello").Unpack()
	assert.Equal(t, 5, a)
	assert.Equal(t, "hello", b)

	v1, v2, v3, v4 := tuple.New4("x", 1, 2.0, false).Unpack()
	assert.Equal(t, "x", v1)
	assert.Equal(t, 1, v2)
	assert.Equal(t, 2.0, v3)
	assert.Equal(t, false, v4)
}

func TestMap_AddTen(t *testing.T) {
	t.Parallel()

	got := tuple.Map2V1(tuple.New2(5, "hello"), func(n int) int { return n + 10 })
	assert.Equal(t, tuple.New2(15, "hello"), got)
}

func TestMap_TypeChange(t *testing.T) {
	t.Parallel()

	// Position 2's type changes from string to int.
	var got tuple.Tuple2[int, int] = tuple.Map2V2(tuple.New2(5, "hello"),
		func(s string) int { return len(s) })
	assert.Equal(t, tuple.New2(5, 5), got)
}

func TestMap_LogicalNot(t *testing.T) {
	t.Parallel()

	in := tuple.New3(1, 2.5, true)

	got := tuple.Map3V3(in, func(b bool) bool { return !b })
	assert.Equal(t, tuple.New3(1, 2.5, false), got)

	// Positions 1 and 2 are carried over exactly.
	assert.Equal(t, in.V1, got.V1)
	assert.Equal(t, in.V2, got.V2)
}

func TestMap_ChainingRoundTrip(t *testing.T) {
	t.Parallel()

	in := tuple.New2(1, "a")
	neg := func(n int) int { return -n }

	got := tuple.Map2V1(tuple.Map2V1(in, neg), neg)
	assert.Equal(t, in, got)
}

func TestMap_ChainAcrossPositions(t *testing.T) {
	t.Parallel()

	v := tuple.New5(0, float32(1.0), 2, true, 4)

	s1 := tuple.Map5V4(v, func(b bool) int64 {
		if b {
			return 3
		}

		return 0
	})
	s2 := tuple.Map5V1(s1, strconv.Itoa)
	s3 := tuple.Map5V2(s2, func(f float32) float64 { return float64(f) })
	s4 := tuple.Map5V5(s3, func(n int) bool { return n > 3 })

	want := tuple.Tuple5[string, float64, int, int64, bool]{
		V1: "0", V2: 1.0, V3: 2, V4: 3, V5: true,
	}
	assert.Equal(t, want, s4)
}

func TestMap_IdentityPreservesTuple(t *testing.T) {
	t.Parallel()

	in := tuple.New4(1, "two", 3.0, []byte("four"))

	assert.Equal(t, in, tuple.Map4V1(in, func(v int) int { return v }))
	assert.Equal(t, in, tuple.Map4V2(in, func(v string) string { return v }))
	assert.Equal(t, in, tuple.Map4V3(in, func(v float64) float64 { return v }))
	assert.Equal(t, in, tuple.Map4V4(in, func(v []byte) []byte { return v }))
}

func TestMap_ComposesPerSlot(t *testing.T) {
	t.Parallel()

	in := tuple.New2(21, "x")
	double := func(n int) int { return n * 2 }
	itoa := strconv.Itoa

	sequential := tuple.Map2V1(tuple.Map2V1(in, double), itoa)
	composed := tuple.Map2V1(in, func(n int) string { return itoa(double(n)) })

	assert.Equal(t, composed, sequential)
}

func TestMap_UntouchedPositionsKeepIdentity(t *testing.T) {
	t.Parallel()

	n := 7
	s := []int{1, 2, 3}
	in := tuple.New3(&n, "mid", s)

	got := tuple.Map3V2(in, func(v string) int { return len(v) })

	// Reference-like elements come through as the same references, not copies
	// of what they point at.
	assert.Same(t, &n, got.V1)
	require.Len(t, got.V3, 3)
	assert.Same(t, &s[0], &got.V3[0])
}

func TestMap_InvokesExactlyOnce(t *testing.T) {
	t.Parallel()

	calls := 0

	tuple.Map2V1(tuple.New2(1, "a"), func(n int) int {
		calls++
		return n
	})

	assert.Equal(t, 1, calls)
}

func TestMap_PanicPropagatesUnmodified(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "boom", func() {
		tuple.Map2V2(tuple.New2(1, "a"), func(string) string {
			panic("boom")
		})
	})
}

func TestMap_InputNotMutated(t *testing.T) {
	t.Parallel()

	in := tuple.New2(5, "hello")
	_ = tuple.Map2V1(in, func(n int) int { return n * 100 })

	assert.Equal(t, tuple.New2(5, "hello"), in)
}
