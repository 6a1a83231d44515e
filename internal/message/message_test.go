package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentence(t *testing.T) {
	assert.Equal(t, "", Sentence(nil))
	assert.Equal(t, "a", Sentence([]string{"a"}))
	assert.Equal(t, "a and b", Sentence([]string{"a", "b"}))
	assert.Equal(t, "a, b, and c", Sentence([]string{"a", "b", "c"}))
}

func TestText(t *testing.T) {
	t.Run("keys are joined", func(t *testing.T) {
		msg := Text("missing_keys", Data{Keys: []string{"a", "b"}})
		assert.Equal(t, "Missing required keys: a and b", msg)
	})

	t.Run("check name is quoted", func(t *testing.T) {
		msg := Text("required_data_unavailable", Data{Check: "present"})
		assert.Equal(t, "Required data is unavailable for the check 'present'", msg)
	})

	t.Run("types are listed after keys", func(t *testing.T) {
		msg := Text("unexpected_value_type", Data{Keys: []string{"b"}, Types: []string{"int", "string"}})
		assert.Equal(t, "Unexpected value types for keys: b. Expected types: int and string", msg)
	})

	t.Run("unknown code falls back to the code", func(t *testing.T) {
		assert.Equal(t, "nope", Text("nope", Data{}))
	})
}
