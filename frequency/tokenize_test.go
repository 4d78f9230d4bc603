package frequency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	s := []struct {
		in       string
		expected []string
	}{
		{in: "", expected: nil},
		{in: "word", expected: []string{"word"}},
		{in: "Two Words", expected: []string{"two", "words"}},
		{in: " a b.", expected: []string{"", "a", "b", ""}},
		{in: "a -- b", expected: []string{"a", "b"}},
		{in: "!", expected: []string{"", ""}},
		{in: "don't", expected: []string{"don", "t"}},
		{in: "tab\tnew\nline", expected: []string{"tab", "new", "line"}},
		{in: "ÄBC", expected: []string{"", "bc"}},
		{in: "MiXeD_42", expected: []string{"mixed_42"}},
	}

	for _, c := range s {
		require.Equal(t, c.expected, Tokenize(c.in), "input %q", c.in)
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "hamlet", Normalize("HAMLET"))
	require.Equal(t, "ÄÖ", Normalize("ÄÖ"))
	require.Equal(t, "\u212A", Normalize("\u212A"))
}
