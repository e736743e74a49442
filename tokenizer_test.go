package cashbuddy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		prefixes []string
		want     map[string]string
	}{
		{
			name:  "simple",
			input: "a/50 desc/Lunch cat/Food",
			want:  map[string]string{"a/": "50", "desc/": "Lunch", "cat/": "Food"},
		},
		{
			name:  "any order",
			input: "cat/Food desc/Lunch a/50",
			want:  map[string]string{"a/": "50", "desc/": "Lunch", "cat/": "Food"},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  map[string]string{},
		},
		{
			name:  "values are trimmed",
			input: "  desc/  Team   lunch   a/ 50  ",
			want:  map[string]string{"desc/": "Team   lunch", "a/": "50"},
		},
		{
			name:  "empty value",
			input: "desc/",
			want:  map[string]string{"desc/": ""},
		},
		{
			name:  "prefix inside a value splits at the first occurrence",
			input: "desc/Paid a/12345 for taxi a/99",
			want:  map[string]string{"desc/": "Paid", "a/": "12345 for taxi a/99"},
		},
		{
			name:  "captured prefix is literal",
			input: "a/99 desc/Paid a/12345 for taxi",
			want:  map[string]string{"a/": "99", "desc/": "Paid a/12345 for taxi"},
		},
		{
			name:  "repeated active prefix is literal",
			input: "desc/one desc/two",
			want:  map[string]string{"desc/": "one desc/two"},
		},
		{
			name:  "prefix needs a preceding whitespace",
			input: "desc/Bought xa/5 cat/Food",
			want:  map[string]string{"desc/": "Bought xa/5", "cat/": "Food"},
		},
		{
			name:  "any whitespace separates",
			input: "a/1\tdesc/two",
			want:  map[string]string{"a/": "1", "desc/": "two"},
		},
		{
			name:  "text before the first prefix is dropped",
			input: "hello a/5",
			want:  map[string]string{"a/": "5"},
		},
		{
			name:     "only requested prefixes are recognized",
			input:    "a/5 desc/x",
			prefixes: []string{PrefixAmount},
			want:     map[string]string{"a/": "5 desc/x"},
		},
		{
			name:     "blank prefixes mean all",
			input:    "id/2 a/5",
			prefixes: []string{"", " "},
			want:     map[string]string{"id/": "2", "a/": "5"},
		},
		{
			name:     "longest prefix wins",
			input:    "a/b/5 a/6",
			prefixes: []string{"a/", "a/b/"},
			want:     map[string]string{"a/b/": "5", "a/": "6"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args := Tokenize(tc.input, tc.prefixes...)
			assert.Equal(t, tc.want, args.values)
			assert.Equal(t, len(tc.want), args.Len())
		})
	}
}

func TestArgs(t *testing.T) {
	args := tokenize(CmdAdd, "a/5 cat/", AllPrefixes)

	v, err := args.Value(PrefixAmount)
	require.NoError(t, err)
	assert.Equal(t, "5", v)

	v, ok := args.Optional(PrefixCategory)
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.True(t, args.Has(PrefixCategory))
	assert.False(t, args.Has(PrefixDescription))

	_, err = args.Value(PrefixDescription)
	require.ErrorIs(t, err, ErrMissingPrefix)
	assert.EqualError(t, err, `Missing prefix "desc/" after 'add' command`)
}
