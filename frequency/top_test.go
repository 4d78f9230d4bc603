package frequency

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestCountWords(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		words, err := CountWords("The the THE", 1)
		require.NoError(t, err)
		require.Equal(t, []string{"the"}, words)

		counts, err := Rank("The the THE", 1)
		require.NoError(t, err)
		require.Equal(t, []WordCount{{Word: "the", Count: 3}}, counts)
	})

	t.Run("punctuation stripped", func(t *testing.T) {
		words, err := CountWords("dog, dog. dog!", 1)
		require.NoError(t, err)
		require.Equal(t, []string{"dog"}, words)
	})

	t.Run("empty text", func(t *testing.T) {
		words, err := CountWords("", 5)
		require.NoError(t, err)
		require.NotNil(t, words)
		require.Empty(t, words)
	})

	t.Run("zero top", func(t *testing.T) {
		words, err := CountWords("one two three", 0)
		require.NoError(t, err)
		require.Empty(t, words)
	})

	t.Run("negative top", func(t *testing.T) {
		words, err := CountWords("one two three", -1)
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Nil(t, words)

		counts, err := Rank("one two three", -3)
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Nil(t, counts)
	})

	t.Run("top exceeds distinct words", func(t *testing.T) {
		words, err := CountWords("b a b", 10)
		require.NoError(t, err)
		require.Equal(t, []string{"b", "a"}, words)
	})

	t.Run("ties keep first occurrence", func(t *testing.T) {
		words, err := CountWords("zeta alpha mid alpha zeta mid omega", 4)
		require.NoError(t, err)
		require.Equal(t, []string{"zeta", "alpha", "mid", "omega"}, words)
	})

	t.Run("boundary separators count as empty word", func(t *testing.T) {
		counts, err := Rank("...cat, dog; cat!", 3)
		require.NoError(t, err)
		require.Equal(t, []WordCount{
			{Word: "", Count: 2},
			{Word: "cat", Count: 2},
			{Word: "dog", Count: 1},
		}, counts)
	})

	t.Run("only separators", func(t *testing.T) {
		counts, err := Rank(" !? ", 5)
		require.NoError(t, err)
		require.Equal(t, []WordCount{{Word: "", Count: 2}}, counts)
	})

	t.Run("digits and underscore are word characters", func(t *testing.T) {
		words, err := CountWords("snake_case 42 snake_case x-42", 3)
		require.NoError(t, err)
		require.Equal(t, []string{"snake_case", "42", "x"}, words)
	})

	t.Run("non ascii letters separate words", func(t *testing.T) {
		words, err := CountWords("café cafe \u212Aelvin", 5)
		require.NoError(t, err)
		require.Equal(t, []string{"caf", "cafe", "elvin"}, words)
	})
}

func TestCountWordsHamlet(t *testing.T) {
	expected := []string{"the", "and", "to", "of", "i", "you", "a", "my", "hamlet", "in"}
	text := readFixture(t, "hamlet.txt")

	words, err := CountWords(text, 10)
	require.NoError(t, err)
	require.Equal(t, expected, words)

	require.Equal(t, expected, Top10(text))
}

func TestCountWordsProperties(t *testing.T) {
	texts := []string{
		"",
		"a",
		"A a B b b c",
		"Hello, World! HELLO... world? hello",
		"\n\tleading and trailing\n",
		"x1 X1 x_1 X_1 1x",
		readFixture(t, "hamlet.txt"),
	}
	tops := []int{0, 1, 3, 10, 1000}

	for _, text := range texts {
		counts, err := Rank(text, len(text)+1)
		require.NoError(t, err)
		distinct := len(counts)

		byWord := make(map[string]int, distinct)
		for _, c := range counts {
			byWord[c.Word] = c.Count
		}

		for _, top := range tops {
			words, err := CountWords(text, top)
			require.NoError(t, err)
			require.Len(t, words, min(top, distinct))

			seen := make(map[string]struct{}, len(words))
			for i, w := range words {
				require.Equal(t, Normalize(w), w)

				_, dup := seen[w]
				require.False(t, dup, "duplicate word %q", w)
				seen[w] = struct{}{}

				if i > 0 {
					require.GreaterOrEqual(t, byWord[words[i-1]], byWord[w])
				}
			}

			again, err := CountWords(text, top)
			require.NoError(t, err)
			require.Equal(t, words, again)

			ranked, err := Rank(text, top)
			require.NoError(t, err)
			require.Len(t, ranked, len(words))
			for i, wc := range ranked {
				require.Equal(t, wc.Word, words[i])
			}
		}
	}
}
