package anki

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/f3rmion/kana"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Deck collects kana notes and writes them as an .apkg package. Every note
// yields a hiragana card and a katakana card, both answered in romaji.
type Deck struct {
	ID    int64
	Name  string
	Desc  string
	notes []deckNote
	now   func() time.Time
}

type deckNote struct {
	guid string
	mora kana.Mora
	tags []string
}

// NewDeck creates an empty deck.
func NewDeck(name string) *Deck {
	now := time.Now()
	return &Deck{
		ID:   now.UnixMilli(),
		Name: name,
		now:  time.Now,
	}
}

// noteNamespace seeds name-based note GUIDs.
var noteNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/f3rmion/kana/anki"))

// noteGUID derives the GUID from the Mora so that exporting the same kana
// again updates the existing notes on import.
func noteGUID(m kana.Mora) string {
	key := strings.Join([]string{m.Hiragana(), m.Katakana(), m.Romaji()}, fieldSeparator)
	return uuid.NewSHA1(noteNamespace, []byte(key)).String()
}

// AddMora adds a note for m. Adding the same Mora twice keeps the first.
func (d *Deck) AddMora(m kana.Mora, tags ...string) error {
	if m.IsInvalid() {
		return errors.New("cannot add invalid mora")
	}
	if lo.ContainsBy(d.notes, func(n deckNote) bool { return n.mora == m }) {
		return nil
	}
	d.notes = append(d.notes, deckNote{
		guid: noteGUID(m),
		mora: m,
		tags: lo.Uniq(lo.Compact(tags)),
	})
	return nil
}

// Len returns the number of notes in the deck.
func (d *Deck) Len() int {
	return len(d.notes)
}

// Save writes the deck to path.
func (d *Deck) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if _, err := d.WriteTo(out); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

// WriteTo writes the deck as an .apkg archive to w.
func (d *Deck) WriteTo(w io.Writer) (int64, error) {
	tempDir, err := os.MkdirTemp("", "kana-anki-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := d.writeCollection(dbPath); err != nil {
		return 0, fmt.Errorf("writing collection: %w", err)
	}

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)

	entry, err := zw.Create("collection.anki2")
	if err != nil {
		return cw.n, err
	}
	db, err := os.Open(dbPath)
	if err != nil {
		return cw.n, err
	}
	_, err = io.Copy(entry, db)
	db.Close()
	if err != nil {
		return cw.n, fmt.Errorf("creating zip: %w", err)
	}

	media, err := zw.Create("media")
	if err != nil {
		return cw.n, err
	}
	if _, err := io.WriteString(media, "{}"); err != nil {
		return cw.n, err
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("creating zip: %w", err)
	}
	return cw.n, nil
}

func (d *Deck) writeCollection(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	now := d.now()
	model := d.model(now)
	models, err := json.Marshal(map[string]*Model{strconv.FormatInt(model.ID, 10): model})
	if err != nil {
		return fmt.Errorf("marshaling models: %w", err)
	}
	deckMap := map[string]*DeckInfo{"1": deckInfo(1, "Default", "", now)}
	deckMap[strconv.FormatInt(d.ID, 10)] = deckInfo(d.ID, d.Name, d.Desc, now)
	decks, err := json.Marshal(deckMap)
	if err != nil {
		return fmt.Errorf("marshaling decks: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO col (id, crt, mod, scm, ver, dty, usn, ls, conf, models, decks, dconf, tags)
		VALUES (1, ?, ?, ?, 11, 0, 0, 0, ?, ?, ?, ?, '{}')
	`, now.Unix(), now.UnixMilli(), now.UnixMilli(), collectionConf, string(models), string(decks), deckConf); err != nil {
		return fmt.Errorf("inserting collection: %w", err)
	}

	base := now.UnixMilli()
	for i, n := range d.notes {
		noteID := base + int64(i)
		flds := strings.Join([]string{n.mora.Hiragana(), n.mora.Katakana(), n.mora.Romaji()}, fieldSeparator)
		sfld := n.mora.Hiragana()
		tags := ""
		if len(n.tags) > 0 {
			tags = " " + strings.Join(n.tags, " ") + " "
		}

		if _, err := tx.Exec(`
			INSERT INTO notes (id, guid, mid, mod, usn, tags, flds, sfld, csum, flags, data)
			VALUES (?, ?, ?, ?, -1, ?, ?, ?, ?, 0, '')
		`, noteID, n.guid, model.ID, now.Unix(), tags, flds, sfld, checksum(sfld)); err != nil {
			return fmt.Errorf("inserting note %s: %w", n.mora, err)
		}

		for ord := range model.Templates {
			if _, err := tx.Exec(`
				INSERT INTO cards (id, nid, did, ord, mod, usn, type, queue, due, ivl, factor, reps, lapses, left, odue, odid, flags, data)
				VALUES (?, ?, ?, ?, ?, -1, 0, 0, ?, 0, 0, 0, 0, 0, 0, 0, 0, '')
			`, noteID*int64(len(model.Templates))+int64(ord), noteID, d.ID, ord, now.Unix(), i+1); err != nil {
				return fmt.Errorf("inserting card for %s: %w", n.mora, err)
			}
		}
	}

	return tx.Commit()
}

func (d *Deck) model(now time.Time) *Model {
	names := []string{FieldKana, FieldKatakana, FieldRomaji}
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name, Ord: i, Font: "Arial", Size: 20, Media: []string{}}
	}

	return &Model{
		ID:     d.ID + 1,
		Name:   "Kana",
		Mod:    now.Unix(),
		USN:    -1,
		DeckID: d.ID,
		Fields: fields,
		Templates: []Template{
			{
				Name: "Hiragana",
				Ord:  0,
				QFmt: `<div class="kana">{{Kana}}</div>`,
				AFmt: `{{FrontSide}}<hr id="answer"><div class="romaji">{{Romaji}}</div>`,
			},
			{
				Name: "Katakana",
				Ord:  1,
				QFmt: `<div class="kana">{{Katakana}}</div>`,
				AFmt: `{{FrontSide}}<hr id="answer"><div class="romaji">{{Romaji}}</div>`,
			},
		},
		CSS:       cardCSS,
		LatexPre:  `\documentclass[12pt]{article}\begin{document}`,
		LatexPost: `\end{document}`,
		Tags:      []string{},
		Req:       [][]any{{0, "any", []int{0}}, {1, "any", []int{1}}},
	}
}

func deckInfo(id int64, name, desc string, now time.Time) *DeckInfo {
	return &DeckInfo{
		ID:        id,
		Name:      name,
		Desc:      desc,
		Mod:       now.Unix(),
		USN:       -1,
		Conf:      1,
		NewToday:  []int{0, 0},
		RevToday:  []int{0, 0},
		LrnToday:  []int{0, 0},
		TimeToday: []int{0, 0},
	}
}

const cardCSS = `.card { font-family: arial; text-align: center; }
.kana { font-size: 96px; }
.romaji { font-size: 40px; }`

const collectionConf = `{"nextPos":1,"estTimes":true,"activeDecks":[1],"sortType":"noteFld","timeLim":0,"sortBackwards":false,"addToCur":true,"curDeck":1,"newSpread":0,"dueCounts":true,"curModel":null,"collapseTime":1200}`

const deckConf = `{"1":{"id":1,"name":"Default","mod":0,"usn":0,"maxTaken":60,"autoplay":true,"timer":0,"replayq":true,"dyn":false,"new":{"delays":[1,10],"ints":[1,4,7],"initialFactor":2500,"order":1,"perDay":20},"rev":{"perDay":200,"ease4":1.3,"maxIvl":36500},"lapse":{"delays":[10],"mult":0,"minInt":1,"leechFails":8,"leechAction":0}}}`

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
