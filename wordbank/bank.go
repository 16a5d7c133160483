// Package wordbank indexes a newline-delimited word list by first letter and
// hands out random words for new trash.
package wordbank

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
)

const letters = 26

// maxLetterDraws bounds the random-letter retries before RandomWord falls
// back to picking among the letters that actually have words.
const maxLetterDraws = 64

var ErrEmptyCorpus = errors.New("wordbank: corpus has no words")

// Bank is a word list partitioned into 26 buckets keyed by first letter.
type Bank struct {
	buckets  [letters][]string
	nonEmpty []int
	total    int
}

// Load reads one word per line. Blank lines and lines that do not start with
// a lowercase ASCII letter are skipped.
func Load(r io.Reader) (*Bank, error) {
	b := &Bank{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		first := word[0]
		if first < 'a' || first > 'z' {
			continue
		}
		b.buckets[first-'a'] = append(b.buckets[first-'a'], word)
		b.total++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordbank: read corpus: %w", err)
	}
	if b.total == 0 {
		return nil, ErrEmptyCorpus
	}
	for i := range b.buckets {
		if len(b.buckets[i]) > 0 {
			b.nonEmpty = append(b.nonEmpty, i)
		}
	}
	return b, nil
}

// Parse is Load over an in-memory corpus.
func Parse(corpus string) (*Bank, error) {
	return Load(strings.NewReader(corpus))
}

// Len returns the number of indexed words.
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return b.total
}

// Bucket returns the words starting with letter.
func (b *Bank) Bucket(letter byte) []string {
	if b == nil || letter < 'a' || letter > 'z' {
		return nil
	}
	return b.buckets[letter-'a']
}

// RandomWord draws a random letter and then a uniformly random word from
// that letter's bucket, redrawing the letter while the bucket is empty.
func (b *Bank) RandomWord(rng *rand.Rand) string {
	if b == nil || b.total == 0 {
		return ""
	}
	for range maxLetterDraws {
		bucket := b.buckets[rng.IntN(letters)]
		if len(bucket) > 0 {
			return bucket[rng.IntN(len(bucket))]
		}
	}
	bucket := b.buckets[b.nonEmpty[rng.IntN(len(b.nonEmpty))]]
	return bucket[rng.IntN(len(bucket))]
}
