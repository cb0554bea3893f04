// Package dictionary resolves kanji readings from a word list, so text such
// as 相葉雅紀 can be converted to kana and romaji.
package dictionary

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/derekparker/trie"
	"github.com/f3rmion/kana"
	"golang.org/x/text/width"
)

// Entry is one line of a JSONL reading dictionary.
type Entry struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
}

// Dictionary maps words to their hiragana reading. It implements
// kana.Segmenter by longest match.
type Dictionary struct {
	words   *trie.Trie
	size    int
	longest int
}

var _ kana.Segmenter = (*Dictionary)(nil)

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{words: trie.New()}
}

// Add stores reading for word. The reading may be written in either kana
// script and replaces any earlier reading for the same word.
func (d *Dictionary) Add(word, reading string) error {
	word = width.Fold.String(strings.TrimSpace(word))
	if word == "" {
		return errors.New("empty word")
	}
	hira, err := kana.KanaSegmenter{}.TransliterateToHiragana(reading)
	if err != nil {
		return fmt.Errorf("reading for %q: %w", word, err)
	}
	if hira == "" {
		return fmt.Errorf("empty reading for %q", word)
	}

	if _, ok := d.words.Find(word); ok {
		d.words.Remove(word)
	} else {
		d.size++
	}
	d.words.Add(word, hira)
	d.longest = max(d.longest, len([]rune(word)))
	return nil
}

// LoadFromFile loads a JSONL dictionary file.
func (d *Dictionary) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dictionary file: %w", err)
	}
	defer file.Close()

	if err := d.Load(file); err != nil {
		return fmt.Errorf("reading dictionary file: %w", err)
	}
	return nil
}

// Load reads one Entry per line from r. Blank lines, malformed JSON and
// entries Add refuses are skipped.
func (d *Dictionary) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum, skipped := 0, 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			skipped++
			continue
		}
		if err := d.Add(entry.Word, entry.Reading); err != nil {
			slog.Debug("skipping dictionary entry", "line", lineNum, "error", err)
			skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	slog.Debug("dictionary loaded", "entries", d.size, "skipped", skipped)
	return nil
}

// Lookup returns the hiragana reading for word.
func (d *Dictionary) Lookup(word string) (string, bool) {
	node, ok := d.words.Find(width.Fold.String(word))
	if !ok {
		return "", false
	}
	return node.Meta().(string), true
}

// Size returns the number of words in the dictionary.
func (d *Dictionary) Size() int {
	return d.size
}

// TransliterateToHiragana implements kana.Segmenter.
func (d *Dictionary) TransliterateToHiragana(text string) (string, error) {
	return d.segment(text, kana.KanaSegmenter{}.TransliterateToHiragana, func(s string) string {
		return s
	})
}

// TransliterateToKatakana implements kana.Segmenter.
func (d *Dictionary) TransliterateToKatakana(text string) (string, error) {
	return d.segment(text, kana.KanaSegmenter{}.TransliterateToKatakana, func(s string) string {
		return strings.Map(kana.HiraganaToKatakana, s)
	})
}

// segment replaces the longest dictionary word at each position with its
// reading. Runs between words go through rest.
func (d *Dictionary) segment(text string, rest func(string) (string, error), reading func(string) string) (string, error) {
	runes := []rune(width.Fold.String(text))

	var b strings.Builder
	start := 0
	flush := func(end int) error {
		if start == end {
			return nil
		}
		out, err := rest(string(runes[start:end]))
		if err != nil {
			return err
		}
		b.WriteString(out)
		return nil
	}

	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		n, r := d.match(runes[i:])
		if n == 0 {
			i++
			continue
		}
		if err := flush(i); err != nil {
			return "", err
		}
		b.WriteString(reading(r))
		i += n
		start = i
	}
	if err := flush(len(runes)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// match returns the rune length and reading of the longest word prefixing
// runes, or 0 when none does.
func (d *Dictionary) match(runes []rune) (int, string) {
	best, reading := 0, ""
	for n := 1; n <= len(runes) && n <= d.longest; n++ {
		key := string(runes[:n])
		if !d.words.HasKeysWithPrefix(key) {
			break
		}
		if node, ok := d.words.Find(key); ok {
			best, reading = n, node.Meta().(string)
		}
	}
	return best, reading
}
