package charsub

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/katalvlaran/textalign/align"
)

var (
	// ErrNoCharSet indicates the char_sub_matrix table holds no rows for the
	// requested char set.
	ErrNoCharSet = errors.New("charsub: no rows for char set")

	// ErrBadPairKey indicates a substitution key is not exactly two codepoints.
	ErrBadPairKey = errors.New("charsub: substitution key must be exactly two codepoints")
)

// Load reads the substitution weights of one char set from the
// char_sub_matrix table of the SQLite database at path.
func Load(path, charSet string) (align.Weights, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("charsub: open %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT char1, char2, sub FROM char_sub_matrix WHERE char_set = ?`, charSet)
	if err != nil {
		return nil, fmt.Errorf("charsub: query char_sub_matrix: %w", err)
	}
	defer rows.Close()

	w := make(align.Weights)
	for rows.Next() {
		var c1, c2 string
		var sub float64
		if err = rows.Scan(&c1, &c2, &sub); err != nil {
			return nil, fmt.Errorf("charsub: scan char_sub_matrix row: %w", err)
		}
		r1, err := singleRune(c1)
		if err != nil {
			return nil, err
		}
		r2, err := singleRune(c2)
		if err != nil {
			return nil, err
		}
		w.Set(r1, r2, sub)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("charsub: read char_sub_matrix: %w", err)
	}
	if len(w) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoCharSet, charSet)
	}

	return w, nil
}

// LoadYAML reads substitution weights from a flat YAML mapping of
// two-character keys to scores.
func LoadYAML(path string) (align.Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("charsub: read %s: %w", path, err)
	}

	raw := make(map[string]float64)
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("charsub: parse %s: %w", path, err)
	}

	return FromStrings(raw)
}

// FromStrings builds weights from two-character string keys, the form the
// original matrices are exported in ("ab" scores the pair {a, b}).
func FromStrings(m map[string]float64) (align.Weights, error) {
	w := make(align.Weights, len(m))
	for key, score := range m {
		pair := []rune(key)
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrBadPairKey, key)
		}
		w.Set(pair[0], pair[1], score)
	}

	return w, nil
}

// Uniform builds a match/mismatch table covering every unordered pair of the
// alphabet: match for identical codepoints, mismatch for all others.
func Uniform(alphabet []rune, match, mismatch float64) align.Weights {
	w := make(align.Weights, len(alphabet)*(len(alphabet)+1)/2)
	for i, a := range alphabet {
		for _, b := range alphabet[i:] {
			if a == b {
				w.Set(a, b, match)
			} else {
				w.Set(a, b, mismatch)
			}
		}
	}

	return w
}

// singleRune decodes a database character cell, rejecting anything that is
// not exactly one codepoint.
func singleRune(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadPairKey, s)
	}

	return r[0], nil
}
