package value

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semports/errors"
)

type pose struct {
	X, Y  float64
	Theta float64
}

type speed int

func TestWrapAs_SameType(t *testing.T) {
	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"int", func(t *testing.T) { roundTrip(t, 42) }},
		{"negative int64", func(t *testing.T) { roundTrip(t, int64(-7)) }},
		{"uint8", func(t *testing.T) { roundTrip(t, uint8(255)) }},
		{"float64", func(t *testing.T) { roundTrip(t, 3.25) }},
		{"bool", func(t *testing.T) { roundTrip(t, true) }},
		{"string", func(t *testing.T) { roundTrip(t, "target_pose") }},
		{"struct", func(t *testing.T) { roundTrip(t, pose{X: 1, Y: 2, Theta: 0.5}) }},
		{"named int", func(t *testing.T) { roundTrip(t, speed(10)) }},
		{"slice", func(t *testing.T) { roundTrip(t, []int{1, 2, 3}) }},
		{"map", func(t *testing.T) { roundTrip(t, map[string]int{"a": 1}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.check)
	}
}

func roundTrip[T any](t *testing.T, in T) {
	t.Helper()
	v := Wrap(in)
	assert.False(t, v.Empty())
	assert.True(t, Is[T](v))

	out, err := As[T](v)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestAs_Mismatch(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{"int as int64", func() error { _, err := As[int64](Wrap(1)); return err }},
		{"int as float64", func() error { _, err := As[float64](Wrap(1)); return err }},
		{"named int as int", func() error { _, err := As[int](Wrap(speed(1))); return err }},
		{"int as named int", func() error { _, err := As[speed](Wrap(1)); return err }},
		{"string as []byte", func() error { _, err := As[[]byte](Wrap("x")); return err }},
		{"[]int as []float64", func() error { _, err := As[[]float64](Wrap([]int{1})); return err }},
		{"struct as pointer", func() error { _, err := As[*pose](Wrap(pose{})); return err }},
		{"empty as int", func() error { _, err := As[int](Value{}); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrTypeMismatch)
			assert.True(t, errors.IsInvalid(err))
		})
	}
}

func TestWrap_CopiesSlices(t *testing.T) {
	in := []int{1, 2, 3}
	v := Wrap(in)
	in[0] = 99

	out := MustAs[[]int](v)
	assert.Equal(t, []int{1, 2, 3}, out)

	out[1] = 77
	again := MustAs[[]int](v)
	assert.Equal(t, []int{1, 2, 3}, again, "extraction must not alias stored memory")
}

func TestWrap_CopiesMaps(t *testing.T) {
	in := map[string]int{"a": 1}
	v := Wrap(in)
	in["b"] = 2

	assert.Equal(t, map[string]int{"a": 1}, MustAs[map[string]int](v))
}

func TestWrap_InterfaceType(t *testing.T) {
	var err error = fmt.Errorf("boom")
	v := Wrap(err)
	assert.Equal(t, "error", v.TypeName())

	out, asErr := As[error](v)
	require.NoError(t, asErr)
	assert.EqualError(t, out, "boom")

	var nilErr error
	n := Wrap(nilErr)
	out, asErr = As[error](n)
	require.NoError(t, asErr)
	assert.Nil(t, out)
}

func TestMustAs_Panics(t *testing.T) {
	assert.Panics(t, func() { MustAs[string](Wrap(1)) })
	assert.NotPanics(t, func() { MustAs[int](Wrap(1)) })
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"same int", Wrap(55), Wrap(55), true},
		{"different int", Wrap(55), Wrap(56), false},
		{"int vs int64", Wrap(55), Wrap(int64(55)), false},
		{"int vs named int", Wrap(10), Wrap(speed(10)), false},
		{"slices", Wrap([]float64{1.5, 2}), Wrap([]float64{1.5, 2}), true},
		{"structs", Wrap(pose{X: 1}), Wrap(pose{X: 1}), true},
		{"both empty", Value{}, Value{}, true},
		{"empty vs value", Value{}, Wrap(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestAccessors(t *testing.T) {
	v := Wrap(speed(3))
	assert.Equal(t, "value.speed", v.TypeName())
	assert.Equal(t, "value.speed(3)", v.String())
	assert.Equal(t, speed(3), v.Interface())

	var empty Value
	assert.True(t, empty.Empty())
	assert.Nil(t, empty.Type())
	assert.Equal(t, "<empty>", empty.TypeName())
	assert.Equal(t, "<empty>", empty.String())
	assert.False(t, Is[int](empty))
}

func TestFromReflect(t *testing.T) {
	v := FromReflect(reflect.ValueOf(speed(7)))
	assert.True(t, Is[speed](v))
	assert.Equal(t, speed(7), MustAs[speed](v))
	assert.True(t, v.Equal(Wrap(speed(7))))

	assert.True(t, FromReflect(reflect.Value{}).Empty())
}
