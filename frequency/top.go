package frequency

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrInvalidArgument = errors.New("frequency: invalid argument")

// WordCount is a ranked token together with the number of its occurrences.
type WordCount struct {
	Word  string
	Count int
}

type item struct {
	word string

	count int

	first int
}

// Equal counts keep the order in which the words were first seen.
func itemsCompare(a *item, b *item) int {
	if a.count == b.count {
		return a.first - b.first
	}

	return b.count - a.count
}

func rank(text string) []*item {
	words := []*item{}

	wordsLookup := map[string]*item{}

	for pos, token := range Tokenize(text) {
		itemPtr := wordsLookup[token]

		if itemPtr == nil {
			wd := item{word: token, count: 1, first: pos}

			words = append(words, &wd)

			wordsLookup[token] = &wd
		} else {
			itemPtr.count++
		}
	}

	slices.SortFunc(words, itemsCompare)

	return words
}

func checkTop(top int) error {
	if top < 0 {
		return fmt.Errorf("top must be >= 0, got %d: %w", top, ErrInvalidArgument)
	}
	return nil
}

// Rank returns up to top most frequent words of text with their counts,
// ordered by descending count.
func Rank(text string, top int) ([]WordCount, error) {
	if err := checkTop(top); err != nil {
		return nil, err
	}

	words := rank(text)
	topWords := make([]WordCount, 0, min(top, len(words)))

	for _, wd := range words[:min(top, len(words))] {
		topWords = append(topWords, WordCount{Word: wd.word, Count: wd.count})
	}

	return topWords, nil
}

// CountWords returns up to top most frequent words of text, lowercased and
// ordered by descending frequency. Words with equal frequency keep the order
// of their first occurrence. A negative top is rejected with ErrInvalidArgument,
// zero gives an empty result.
func CountWords(text string, top int) ([]string, error) {
	counts, err := Rank(text, top)
	if err != nil {
		return nil, err
	}

	topWords := make([]string, 0, len(counts))
	for _, wc := range counts {
		topWords = append(topWords, wc.Word)
	}

	return topWords, nil
}

func Top10(text string) []string {
	topWords, _ := CountWords(text, 10)
	return topWords
}

// Normalize lowercases ASCII letters only, so folding never depends on locale.
func Normalize(word string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, word)
}
