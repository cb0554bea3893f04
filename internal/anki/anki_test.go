package anki

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/kana"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeck(t *testing.T, moras ...kana.Mora) string {
	t.Helper()
	deck := NewDeck("Kana::Seion")
	for _, m := range moras {
		require.NoError(t, deck.AddMora(m, "kana", "seion", ""))
	}
	path := filepath.Join(t.TempDir(), "kana.apkg")
	require.NoError(t, deck.Save(path))
	return path
}

func TestRoundTrip(t *testing.T) {
	moras := []kana.Mora{kana.FromRomaji("ka"), kana.FromRomaji("shi"), kana.FromRomaji("kyo")}
	pkg, err := OpenPackage(writeDeck(t, moras...))
	require.NoError(t, err)
	defer pkg.Close()

	assert.Len(t, pkg.Notes, 3)
	assert.Len(t, pkg.Cards, 6)
	assert.Len(t, pkg.Models, 1)
	assert.Equal(t, moras, pkg.Moras())

	note := pkg.Notes[1]
	assert.Equal(t, []string{FieldKana, FieldKatakana, FieldRomaji}, pkg.GetFieldNames(note))
	assert.Equal(t, "し", pkg.GetFieldValue(note, "kana"))
	assert.Equal(t, "シ", pkg.GetFieldValue(note, FieldKatakana))
	assert.Equal(t, "shi", pkg.GetFieldValue(note, FieldRomaji))
	assert.Empty(t, pkg.GetFieldValue(note, "Meaning"))
	assert.Equal(t, " kana seion ", note.Tags)
	assert.Equal(t, checksum("し"), note.CSum)
	assert.Len(t, note.GUID, 36)

	var names []string
	for _, card := range pkg.Cards {
		names = append(names, pkg.GetDeck(card).Name)
	}
	assert.Equal(t, []string{"Kana::Seion"}, lo.Uniq(names))

	summary := pkg.Summary()
	assert.Contains(t, summary, "Decks: 2")
	assert.Contains(t, summary, "- Kana::Seion")
	assert.Contains(t, summary, "Kana (3 fields)")
	assert.Contains(t, summary, "Notes: 3")
	assert.Contains(t, summary, "Cards: 6")
}

func TestAddMora(t *testing.T) {
	deck := NewDeck("test")
	assert.Error(t, deck.AddMora(kana.Mora{}))
	require.NoError(t, deck.AddMora(kana.FromRomaji("ji")))
	require.NoError(t, deck.AddMora(kana.FromHiragana("ぢ")))
	assert.Equal(t, 1, deck.Len())
}

func TestNoteGUIDsAreStableAcrossExports(t *testing.T) {
	moras := []kana.Mora{kana.FromRomaji("ka"), kana.FromRomaji("kyo")}

	first, err := OpenPackage(writeDeck(t, moras...))
	require.NoError(t, err)
	defer first.Close()
	second, err := OpenPackage(writeDeck(t, moras...))
	require.NoError(t, err)
	defer second.Close()

	guids := func(p *Package) []string {
		return lo.Map(p.Notes, func(n *Note, _ int) string { return n.GUID })
	}
	assert.Equal(t, guids(first), guids(second))
	assert.NotEqual(t, first.Notes[0].GUID, first.Notes[1].GUID)
	assert.Equal(t, noteGUID(kana.FromRomaji("ka")), first.Notes[0].GUID)
}

func TestWriteToArchiveLayout(t *testing.T) {
	deck := NewDeck("layout")
	require.NoError(t, deck.AddMora(kana.FromRomaji("n")))

	var buf bytes.Buffer
	n, err := deck.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), n)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	var files []string
	for _, f := range zr.File {
		files = append(files, f.Name)
	}
	assert.Equal(t, []string{"collection.anki2", "media"}, files)
}

func TestOpenPackageErrors(t *testing.T) {
	_, err := OpenPackage(filepath.Join(t.TempDir(), "missing.apkg"))
	assert.Error(t, err)

	bogus := filepath.Join(t.TempDir(), "bogus.apkg")
	require.NoError(t, os.WriteFile(bogus, []byte("not a zip"), 0644))
	_, err = OpenPackage(bogus)
	assert.Error(t, err)
}
