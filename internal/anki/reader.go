package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/f3rmion/kana"
	_ "modernc.org/sqlite"
)

// Package is an opened .apkg file.
type Package struct {
	path    string
	tempDir string
	db      *sql.DB
	Models  map[int64]*Model
	Decks   map[int64]*DeckInfo
	Notes   []*Note
	Cards   []*Card
}

// OpenPackage opens an Anki .apkg file for reading.
func OpenPackage(path string) (*Package, error) {
	pkg := &Package{
		path:   path,
		Models: make(map[int64]*Model),
		Decks:  make(map[int64]*DeckInfo),
	}

	tempDir, err := os.MkdirTemp("", "kana-anki-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	pkg.tempDir = tempDir

	if err := pkg.extract(); err != nil {
		pkg.Close()
		return nil, err
	}

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		dbPath = filepath.Join(tempDir, "collection.anki21")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		pkg.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}
	pkg.db = db

	for _, load := range []func() error{pkg.loadCollection, pkg.loadNotes, pkg.loadCards} {
		if err := load(); err != nil {
			pkg.Close()
			return nil, err
		}
	}

	return pkg, nil
}

func (p *Package) extract() error {
	r, err := zip.OpenReader(p.path)
	if err != nil {
		return fmt.Errorf("opening zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		fpath := filepath.Join(p.tempDir, f.Name)

		// Prevent zip slip
		if !strings.HasPrefix(fpath, filepath.Clean(p.tempDir)+string(os.PathSeparator)) {
			return fmt.Errorf("illegal file path: %s", fpath)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(fpath), 0755); err != nil {
			return err
		}
		if err := extractFile(f, fpath); err != nil {
			return fmt.Errorf("extracting %s: %w", f.Name, err)
		}
	}

	return nil
}

func extractFile(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// loadCollection loads models and decks from the col table.
func (p *Package) loadCollection() error {
	var models, decks string

	row := p.db.QueryRow("SELECT models, decks FROM col")
	if err := row.Scan(&models, &decks); err != nil {
		return fmt.Errorf("reading collection: %w", err)
	}

	var modelsMap map[string]json.RawMessage
	if err := json.Unmarshal([]byte(models), &modelsMap); err != nil {
		return fmt.Errorf("parsing models: %w", err)
	}
	for _, raw := range modelsMap {
		var model Model
		if err := json.Unmarshal(raw, &model); err != nil {
			continue // Skip malformed models
		}
		p.Models[model.ID] = &model
	}

	var decksMap map[string]json.RawMessage
	if err := json.Unmarshal([]byte(decks), &decksMap); err != nil {
		return fmt.Errorf("parsing decks: %w", err)
	}
	for _, raw := range decksMap {
		var deck DeckInfo
		if err := json.Unmarshal(raw, &deck); err != nil {
			continue
		}
		p.Decks[deck.ID] = &deck
	}

	return nil
}

func (p *Package) loadNotes() error {
	rows, err := p.db.Query(`
		SELECT id, guid, mid, mod, usn, tags, flds, sfld, csum, flags, data
		FROM notes ORDER BY id
	`)
	if err != nil {
		return fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var note Note
		if err := rows.Scan(
			&note.ID, &note.GUID, &note.ModelID, &note.Mod, &note.USN,
			&note.Tags, &note.RawFlds, &note.SFLD, &note.CSum, &note.Flags, &note.Data,
		); err != nil {
			return fmt.Errorf("scanning note: %w", err)
		}

		note.Fields = strings.Split(note.RawFlds, fieldSeparator)
		p.Notes = append(p.Notes, &note)
	}

	return rows.Err()
}

func (p *Package) loadCards() error {
	rows, err := p.db.Query(`
		SELECT id, nid, did, ord, mod, type, queue, due
		FROM cards ORDER BY id
	`)
	if err != nil {
		return fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var card Card
		if err := rows.Scan(
			&card.ID, &card.NoteID, &card.DeckID, &card.Ord, &card.Mod,
			&card.Type, &card.Queue, &card.Due,
		); err != nil {
			return fmt.Errorf("scanning card: %w", err)
		}
		p.Cards = append(p.Cards, &card)
	}

	return rows.Err()
}

// GetModel returns the model for a note.
func (p *Package) GetModel(note *Note) *Model {
	return p.Models[note.ModelID]
}

// GetDeck returns the deck for a card.
func (p *Package) GetDeck(card *Card) *DeckInfo {
	return p.Decks[card.DeckID]
}

// GetFieldValue returns a field value from a note by field name.
func (p *Package) GetFieldValue(note *Note, fieldName string) string {
	model := p.GetModel(note)
	if model == nil {
		return ""
	}

	for _, field := range model.Fields {
		if strings.EqualFold(field.Name, fieldName) && field.Ord < len(note.Fields) {
			return note.Fields[field.Ord]
		}
	}

	return ""
}

// GetFieldNames returns all field names for a note's model.
func (p *Package) GetFieldNames(note *Note) []string {
	model := p.GetModel(note)
	if model == nil {
		return nil
	}

	names := make([]string, len(model.Fields))
	for i, field := range model.Fields {
		names[i] = field.Name
	}
	return names
}

// Moras returns the Mora of every note whose Romaji, Kana or Katakana field
// names a chart mora, in note order.
func (p *Package) Moras() []kana.Mora {
	var moras []kana.Mora
	for _, note := range p.Notes {
		m := kana.FromRomaji(strings.TrimSpace(p.GetFieldValue(note, FieldRomaji)))
		if m.IsInvalid() {
			m = kana.FromHiragana(strings.TrimSpace(p.GetFieldValue(note, FieldKana)))
		}
		if m.IsInvalid() {
			m = kana.FromKatakana(strings.TrimSpace(p.GetFieldValue(note, FieldKatakana)))
		}
		if m.IsValid() {
			moras = append(moras, m)
		}
	}
	return moras
}

// Close cleans up resources.
func (p *Package) Close() error {
	if p.db != nil {
		p.db.Close()
	}
	if p.tempDir != "" {
		os.RemoveAll(p.tempDir)
	}
	return nil
}

// Summary returns a summary of the package contents.
func (p *Package) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Anki Package: %s\n", p.path)
	fmt.Fprintf(&sb, "  Decks: %d\n", len(p.Decks))
	for _, name := range sortedNames(p.Decks, func(d *DeckInfo) string { return d.Name }) {
		fmt.Fprintf(&sb, "    - %s\n", name)
	}
	fmt.Fprintf(&sb, "  Models (Note Types): %d\n", len(p.Models))
	for _, model := range p.Models {
		fmt.Fprintf(&sb, "    - %s (%d fields)\n", model.Name, len(model.Fields))
	}
	fmt.Fprintf(&sb, "  Notes: %d\n", len(p.Notes))
	fmt.Fprintf(&sb, "  Cards: %d\n", len(p.Cards))
	fmt.Fprintf(&sb, "  Kana: %d\n", len(p.Moras()))

	return sb.String()
}

func sortedNames[T any](m map[int64]T, name func(T) string) []string {
	names := make([]string, 0, len(m))
	for _, v := range m {
		names = append(names, name(v))
	}
	sort.Strings(names)
	return names
}
