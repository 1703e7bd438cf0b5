package component

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semports/convert"
	"github.com/c360/semports/errors"
	"github.com/c360/semports/port"
	"github.com/c360/semports/value"
)

type goal struct{ X, Y int }

func testPorts(t *testing.T) port.List {
	t.Helper()
	list, err := port.NewBuilder().
		Add(port.InputWithDefault("speed", 10, "cruise speed")).
		Add(port.Input[[]int]("waypoints", "")).
		Add(port.Output[bool]("arrived", "")).
		Add(port.UntypedInput("message", "")).
		Add(port.Input[goal]("goal", "", port.WithRegistry(convert.NewDefaultRegistry()))).
		Build()
	require.NoError(t, err)
	return list
}

func TestIsReference(t *testing.T) {
	tests := []struct {
		text string
		key  string
		ok   bool
	}{
		{"{target}", "target", true},
		{"{a b}", "a b", true},
		{"{}", "", false},
		{"target", "", false},
		{"{target", "", false},
		{"{{x}}", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			key, ok := IsReference(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestValidateAttributes(t *testing.T) {
	ports := testPorts(t)

	tests := []struct {
		name  string
		attrs map[string]string
		want  []string // expected "field:code" pairs
	}{
		{
			name:  "valid literals",
			attrs: map[string]string{"speed": "55", "waypoints": "1;2;3", "arrived": "true"},
		},
		{
			name:  "reserved attributes skipped",
			attrs: map[string]string{"name": "mover", "ID": "MoveBase"},
		},
		{
			name:  "references skipped",
			attrs: map[string]string{"speed": "{cruise}", "arrived": "{done}", "goal": "{target}"},
		},
		{
			name:  "untyped accepts anything",
			attrs: map[string]string{"message": "hello; world"},
		},
		{
			name:  "type errors",
			attrs: map[string]string{"speed": "fast", "waypoints": "1;x;3"},
			want:  []string{"speed:type", "waypoints:type"},
		},
		{
			name:  "unknown and bad names",
			attrs: map[string]string{"velocity": "3", "_private": "1"},
			want:  []string{"_private:name", "velocity:unknown"},
		},
		{
			name:  "missing converter",
			attrs: map[string]string{"goal": "1;2"},
			want:  []string{"goal:converter"},
		},
		{
			name:  "empty vector",
			attrs: map[string]string{"waypoints": ""},
			want:  []string{"waypoints:type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateAttributes(ports, tt.attrs)
			got := make([]string, 0, len(errs))
			for _, e := range errs {
				got = append(got, e.Field+":"+e.Code)
				assert.NotEmpty(t, e.Message)
			}
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ValidateAttributes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveAttributes(t *testing.T) {
	ports := testPorts(t)

	resolved, err := ResolveAttributes(ports, map[string]string{
		"name":      "mover",
		"waypoints": "4;5",
		"arrived":   "{done}",
		"message":   "go",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, value.MustAs[int](resolved["speed"]), "default applies")
	assert.Equal(t, []int{4, 5}, value.MustAs[[]int](resolved["waypoints"]))
	assert.Equal(t, "go", value.MustAs[string](resolved["message"]))
	assert.NotContains(t, resolved, "arrived", "references are not resolved")
	assert.NotContains(t, resolved, "goal", "no attribute and no default")
	assert.NotContains(t, resolved, "name")
}

func TestResolveAttributes_Override(t *testing.T) {
	resolved, err := ResolveAttributes(testPorts(t), map[string]string{"speed": "55"})
	require.NoError(t, err)
	assert.True(t, resolved["speed"].Equal(value.Wrap(55)))
}

func TestResolveAttributes_Invalid(t *testing.T) {
	_, err := ResolveAttributes(testPorts(t), map[string]string{"speed": "fast", "velocity": "1"})
	require.Error(t, err)

	assert.True(t, errors.IsInvalid(err))
	assert.ErrorIs(t, err, errors.ErrInvalidData)
	assert.Contains(t, err.Error(), `"speed"`)
	assert.Contains(t, err.Error(), `"velocity"`)

	assert.ErrorIs(t, err, errors.ErrConversion)
	assert.ErrorIs(t, err, errors.ErrUnknownAttribute)

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "speed", ve.Field)
}

func TestValidationError_Unwrap(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{CodeUnknown, errors.ErrUnknownAttribute},
		{CodeName, errors.ErrInvalidPortName},
		{CodeType, errors.ErrConversion},
		{CodeConverter, errors.ErrMissingSpecialization},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.ErrorIs(t, ValidationError{Field: "x", Code: tt.code}, tt.want)
		})
	}
	assert.NoError(t, ValidationError{Code: "other"}.Unwrap())
}

func TestCheckAttributes_ConvertsOnce(t *testing.T) {
	calls := 0
	count := func(text string) (value.Value, error) {
		calls++
		return convert.Default().Parse(reflect.TypeFor[int](), text)
	}
	ports, err := port.NewBuilder().
		Add(port.Input[int]("speed", "", port.WithConverter(count))).
		Add(port.InputWithDefault("limit", 3, "")).
		Build()
	require.NoError(t, err)

	resolved, verrs := CheckAttributes(ports, map[string]string{"speed": "7"})
	require.Empty(t, verrs)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 7, value.MustAs[int](resolved["speed"]))
	assert.Equal(t, 3, value.MustAs[int](resolved["limit"]))

	resolved, verrs = CheckAttributes(ports, map[string]string{"speed": "x", "ID": "n1"})
	assert.Nil(t, resolved)
	require.Len(t, verrs, 1)
	assert.Equal(t, CodeType, verrs[0].Code)
	assert.Equal(t, 2, calls)
}
