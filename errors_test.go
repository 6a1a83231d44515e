package optionoids_test

import (
	"errors"
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fish-Fur/optionoids"
)

func TestError_DefaultMessages(t *testing.T) {
	cases := []struct {
		err  *optionoids.Error
		want string
	}{
		{optionoids.NewError(optionoids.KindRequiredDataUnavailable, optionoids.WithCheck("present")),
			"Required data is unavailable for the check 'present'"},
		{optionoids.NewError(optionoids.KindMissingKeys, optionoids.WithErrorKeys("a", "b", "c")),
			"Missing required keys: a, b, and c"},
		{optionoids.NewError(optionoids.KindUnexpectedValueVariant, optionoids.WithErrorKeys("a"), optionoids.WithVariants("x", 2)),
			"Unexpected value variants for keys: a. Expected variants: x and 2"},
		{optionoids.NewError(optionoids.KindExpectedMultipleKeys),
			"Expected multiple keys but none were provided"},
		{optionoids.NewError(optionoids.KindUnexpectedKeys, optionoids.WithErrorKeys("z"), optionoids.WithMessage("custom")),
			"custom"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.Error())
	}
}

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("connect: %w", optionoids.NewError(optionoids.KindMissingKeys, optionoids.WithErrorKeys("host")))
	assert.ErrorIs(t, err, optionoids.ErrMissingKeys)
	assert.NotErrorIs(t, err, optionoids.ErrUnexpectedKeys)

	e, ok := optionoids.AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"host"}, e.Keys)

	errs, ok := optionoids.AsErrors(err)
	require.True(t, ok)
	assert.Len(t, errs, 1)
}

func TestError_MarshalJSON(t *testing.T) {
	e := optionoids.NewError(optionoids.KindUnexpectedValueType,
		optionoids.WithErrorKeys("b"), optionoids.WithTypes("int", "string"))
	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "unexpected_value_type",
		"message": "Unexpected value types for keys: b. Expected types: int and string",
		"keys": ["b"],
		"types": ["int", "string"]
	}`, string(b))
}

func TestErrors_Summary(t *testing.T) {
	errs := optionoids.Errors{
		optionoids.NewError(optionoids.KindMissingKeys, optionoids.WithErrorKeys("a")),
		optionoids.NewError(optionoids.KindUnexpectedKeys, optionoids.WithErrorKeys("b")),
		optionoids.NewError(optionoids.KindUnexpectedNilValue, optionoids.WithErrorKeys("c")),
		optionoids.NewError(optionoids.KindExpectedMultipleKeys),
	}
	assert.Equal(t,
		"Missing required keys: a; Unexpected keys found: b; Unexpected nil values for keys: c; ... (total 4)",
		errs.Error())
	assert.Equal(t, "", optionoids.Errors{}.Error())
	assert.Equal(t, errs[1], errs.First(optionoids.KindUnexpectedKeys))
	assert.Nil(t, errs.First(optionoids.KindUnexpectedValueType))
}

func TestAsErrors_Foreign(t *testing.T) {
	_, ok := optionoids.AsErrors(errors.New("boom"))
	assert.False(t, ok)
	_, ok = optionoids.AsErrors(nil)
	assert.False(t, ok)
}
