package optionoids_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fish-Fur/optionoids"
)

type emptyish struct{ n int }

func (e emptyish) IsBlank() bool { return e.n == 0 }

func TestIsBlank(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]any

	blank := []any{nil, nilPtr, nilMap, "", " \t\n", []int{}, map[string]int{}, [0]int{}, emptyish{}}
	for _, v := range blank {
		assert.True(t, optionoids.IsBlank(v), "%#v should be blank", v)
	}

	present := []any{false, 0, 0.0, "x", []int{0}, map[string]int{"a": 0}, struct{}{}, emptyish{n: 1}}
	for _, v := range present {
		assert.True(t, optionoids.IsPresent(v), "%#v should be present", v)
	}
}

func TestIsNil(t *testing.T) {
	var nilPtr *int
	var nilSlice []string
	var nilFunc func()

	assert.True(t, optionoids.IsNil(nil))
	assert.True(t, optionoids.IsNil(nilPtr))
	assert.True(t, optionoids.IsNil(nilSlice))
	assert.True(t, optionoids.IsNil(nilFunc))

	assert.False(t, optionoids.IsNil(false))
	assert.False(t, optionoids.IsNil(""))
	assert.False(t, optionoids.IsNil([]string{}))
}
