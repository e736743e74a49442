package cashbuddy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdate(t *testing.T) {
	keep := Keep[string]()
	assert.False(t, keep.IsSet())
	assert.Equal(t, "", keep.Value())
	assert.Equal(t, "current", keep.Or("current"))

	var zero Update[string]
	assert.Equal(t, keep, zero)

	set := Set("new")
	assert.True(t, set.IsSet())
	assert.Equal(t, "new", set.Value())
	assert.Equal(t, "new", set.Or("current"))

	// Setting the zero value is still a replacement.
	empty := Set("")
	assert.True(t, empty.IsSet())
	assert.Equal(t, "", empty.Or("current"))
}

func TestEditRequest_IsEmpty(t *testing.T) {
	assert.True(t, EditRequest{}.IsEmpty())
	assert.False(t, EditRequest{Amount: Set(A(1))}.IsEmpty())
	assert.False(t, EditRequest{Description: Set("x")}.IsEmpty())
	assert.False(t, EditRequest{Category: Set("Food")}.IsEmpty())
}
