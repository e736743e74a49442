package cashbuddy

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, "{}", string(got))
	})

	t.Run("simple object", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 1)
		w.Append("b", "hello")
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"a":1,"b":"hello"}`, string(got))
	})

	t.Run("embed object", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 1)
		w.Embed(json.RawMessage(`{"c":3,"d":4}`))
		w.Append("b", 2)
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"a":1,"c":3,"d":4,"b":2}`, string(got))
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // a zero value is still appended.
		w.Optional("b", "")
		w.Optional("c", false)
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"a":0,"d":"hello"}`, string(got))
	})

	t.Run("embed from", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("kind", "expense")
		w.EmbedFrom(NewExpense(A(12.5), "Lunch", "Food"))
		got, err := w.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{"kind":"expense","amount":12.5,"description":"Lunch","category":"Food"}`, string(got))
	})
}

func TestJsonObjectWriter_Errors(t *testing.T) {
	var w jsonObjectWriter
	w.Embed([]byte(`[1,2]`))
	w.Append("a", 1) // ignored after a failure.
	_, err := w.MarshalJSON()
	assert.ErrorContains(t, err, "not a JSON object")

	var v jsonObjectWriter
	v.Append("f", func() {})
	assert.Error(t, v.WriteLine(io.Discard))
}

func TestJsonObjectWriter_WriteLine(t *testing.T) {
	var buf bytes.Buffer
	var w jsonObjectWriter
	w.Append("kind", "budget").Append("amount", A(100))
	require.NoError(t, w.WriteLine(&buf))
	assert.Equal(t, "{\"kind\":\"budget\",\"amount\":100}\n", buf.String())
}
