// Package pinyin decorates tone-numbered Pinyin ("pin1yin1") with tone
// marks ("pīnyīn"), leaving everything that does not look like a numbered
// syllable alone.
package pinyin

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const vowelSet = "aeiouüvAEIOUÜV"

var (
	NumberedSyllable = regexp.MustCompile(
		`[` + vowelSet + `]+` + // vowels
			`(?::|r|n|ng|R|N|NG)*` + // finals
			`[0-5]`) // tone
	// placeholders for ü, first one present wins
	umlauts = [4][2]string{{"V", "Ü"}, {"v", "ü"}, {"U:", "Ü"}, {"u:", "ü"}}
	// a, e and ou take the tone whenever present
	nuclei = [8][2]string{
		{"a", "a"}, {"A", "A"}, {"e", "e"}, {"E", "E"},
		{"ou", "o"}, {"oU", "o"}, {"OU", "O"}, {"Ou", "O"}}
)

// Span is a half-open range of byte offsets.
type Span struct {
	Start, End int
}

// Find returns the next numbered syllable in text at or after byte offset
// start. Only the vowels, finals and tone digit are covered; initials are
// left outside the span. A tone digit directly followed by another digit
// does not count, so "a12" holds no syllable at all.
func Find(text string, start int) (Span, bool) {
	for start <= len(text) {
		bounds := NumberedSyllable.FindStringIndex(text[start:])
		if bounds == nil {
			break
		}
		span := Span{start + bounds[0], start + bounds[1]}
		next, _ := utf8.DecodeRuneInString(text[span.End:])
		if span.End == len(text) || !unicode.IsDigit(next) {
			return span, true
		}
		// any later start inside span runs into the same digit
		start = span.End
	}
	return Span{}, false
}

// Nucleus finds the vowel of word that carries the tone.
func Nucleus(word string) (rune, bool) {
	for _, n := range nuclei {
		if strings.Contains(word, n[0]) {
			return rune(n[1][0]), true
		}
	}
	for i := len(word); i > 0; {
		r, size := utf8.DecodeLastRuneInString(word[:i])
		if strings.ContainsRune(vowelSet, r) {
			return r, true
		}
		i -= size
	}
	return 0, false
}

// Tone returns the tone digit word ends with, or 5 if it ends with none.
func Tone(word string) int {
	if word != "" && word[len(word)-1] >= '0' && word[len(word)-1] <= '5' {
		return int(word[len(word)-1] - '0')
	}
	return 5
}

// Syllable rewrites a single numbered syllable, as found by Find, with its
// tone mark. A syllable with no vowel at all ("zh4") is read as ending in i.
func Syllable(word string) string {
	for _, u := range umlauts {
		if strings.Contains(word, u[0]) {
			word = strings.ReplaceAll(word, u[0], u[1])
			break
		}
	}
	if word == "" {
		return word
	}
	switch last := word[len(word)-1]; {
	case last == '0' || last == '5':
		return word[:len(word)-1]
	case last < '1' || last > '4':
		return word
	}
	tone, word := Tone(word), word[:len(word)-1]
	nucleus, ok := Nucleus(word)
	if !ok {
		word += "i"
		nucleus = 'i'
	}
	marked, ok := Mark(tone, nucleus)
	if !ok {
		panic(fmt.Errorf("pinyin: no tone %d for nucleus %q", tone, nucleus))
	}
	return strings.ReplaceAll(word, string(nucleus), string(marked))
}

// Format decorates every numbered syllable in text.
func Format(text string) string {
	return Rewrite(text, nil)
}

// Rewrite is Format, calling observe (if not nil) with the span of every
// syllable in text along with the original and rewritten syllable.
func Rewrite(text string, observe func(span Span, from, to string)) string {
	var sb strings.Builder
	sb.Grow(len(text))
	done := 0
	for {
		span, ok := Find(text, done)
		if !ok {
			break
		}
		from := text[span.Start:span.End]
		to := Syllable(from)
		if observe != nil {
			observe(span, from, to)
		}
		sb.WriteString(text[done:span.Start])
		sb.WriteString(to)
		done = span.End
	}
	sb.WriteString(text[done:])
	return sb.String()
}
