package charsub_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/textalign/align"
	"github.com/katalvlaran/textalign/charsub"
)

// newMatrixDB creates a throwaway SQLite database with the char_sub_matrix
// schema and the given rows.
func newMatrixDB(t *testing.T, rows [][3]any) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "subs.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE char_sub_matrix (
		char1 TEXT, char2 TEXT, char_set TEXT, score REAL, sub REAL
	)`)
	require.NoError(t, err)

	for _, r := range rows {
		_, err = db.Exec(
			`INSERT INTO char_sub_matrix (char1, char2, char_set, score, sub)
			 VALUES (?, ?, 'default', NULL, ?)`, r[0], r[1], r[2])
		require.NoError(t, err)
	}

	return path
}

// TestLoad_ReadsCharSet verifies weights come back canonicalized and usable
// in both lookup directions.
func TestLoad_ReadsCharSet(t *testing.T) {
	path := newMatrixDB(t, [][3]any{
		{"a", "a", 2.0},
		{"a", "b", -1.0},
		{"b", "b", 2.0},
	})

	w, err := charsub.Load(path, "default")
	require.NoError(t, err)
	require.Len(t, w, 3)

	s, ok := w.Lookup('b', 'a')
	assert.True(t, ok, "lookup must work in either order")
	assert.Equal(t, -1.0, s)
}

// TestLoad_UnknownCharSet verifies the sentinel for an absent char set.
func TestLoad_UnknownCharSet(t *testing.T) {
	path := newMatrixDB(t, [][3]any{{"a", "a", 2.0}})

	_, err := charsub.Load(path, "missing")
	assert.ErrorIs(t, err, charsub.ErrNoCharSet)
}

// TestLoad_BadCell verifies multi-codepoint character cells are rejected.
func TestLoad_BadCell(t *testing.T) {
	path := newMatrixDB(t, [][3]any{{"ab", "c", 1.0}})

	_, err := charsub.Load(path, "default")
	assert.ErrorIs(t, err, charsub.ErrBadPairKey)
}

// TestLoadYAML_RoundTrip verifies the flat two-character-key YAML form.
func TestLoadYAML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"aa: 2\nab: -1.5\nbb: 2\n"), 0o644))

	w, err := charsub.LoadYAML(path)
	require.NoError(t, err)

	s, ok := w.Lookup('b', 'a')
	assert.True(t, ok)
	assert.Equal(t, -1.5, s)
}

// TestLoadYAML_MissingFile verifies read failures surface.
func TestLoadYAML_MissingFile(t *testing.T) {
	_, err := charsub.LoadYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// TestFromStrings_BadKey verifies key length validation.
func TestFromStrings_BadKey(t *testing.T) {
	_, err := charsub.FromStrings(map[string]float64{"abc": 1})
	assert.ErrorIs(t, err, charsub.ErrBadPairKey)

	_, err = charsub.FromStrings(map[string]float64{"a": 1})
	assert.ErrorIs(t, err, charsub.ErrBadPairKey)
}

// TestUniform_CoversAlphabet verifies the synthetic table scores every pair
// and feeds align.Align without missing-weight failures.
func TestUniform_CoversAlphabet(t *testing.T) {
	w := charsub.Uniform([]rune("abc"), 2, -1)

	s, ok := w.Lookup('a', 'a')
	require.True(t, ok)
	assert.Equal(t, 2.0, s)

	s, ok = w.Lookup('c', 'a')
	require.True(t, ok)
	assert.Equal(t, -1.0, s)

	rows, err := align.Align([][]rune{
		[]rune("abc"),
		[]rune("ac"),
	}, w, -3, -1)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
