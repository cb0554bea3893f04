// Package anki reads and writes Anki .apkg flashcard packages of kana.
package anki

import (
	"crypto/sha256"
	"fmt"
	"strconv"
)

// Field names of the kana note type.
const (
	FieldKana     = "Kana"
	FieldKatakana = "Katakana"
	FieldRomaji   = "Romaji"
)

// fieldSeparator joins note fields in the flds column.
const fieldSeparator = "\x1f"

// Model represents an Anki note type (model).
type Model struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Type      int        `json:"type"` // 0 = standard, 1 = cloze
	Mod       int64      `json:"mod"`
	USN       int        `json:"usn"`
	SortField int        `json:"sortf"`
	DeckID    int64      `json:"did"`
	Fields    []Field    `json:"flds"`
	Templates []Template `json:"tmpls"`
	CSS       string     `json:"css"`
	LatexPre  string     `json:"latexPre"`
	LatexPost string     `json:"latexPost"`
	Tags      []string   `json:"tags"`
	Req       [][]any    `json:"req"`
}

// Field represents a field in a note type.
type Field struct {
	Name   string   `json:"name"`
	Ord    int      `json:"ord"`
	Sticky bool     `json:"sticky"`
	RTL    bool     `json:"rtl"`
	Font   string   `json:"font"`
	Size   int      `json:"size"`
	Media  []string `json:"media"`
}

// Template is a card template of a note type.
type Template struct {
	Name  string `json:"name"`
	Ord   int    `json:"ord"`
	QFmt  string `json:"qfmt"`
	AFmt  string `json:"afmt"`
	BQFmt string `json:"bqfmt"`
	BAFmt string `json:"bafmt"`
}

// DeckInfo is the deck metadata stored in a collection.
type DeckInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Desc      string `json:"desc"`
	Mod       int64  `json:"mod"`
	USN       int    `json:"usn"`
	Collapsed bool   `json:"collapsed"`
	Dyn       int    `json:"dyn"`
	Conf      int64  `json:"conf"`
	NewToday  []int  `json:"newToday"`
	RevToday  []int  `json:"revToday"`
	LrnToday  []int  `json:"lrnToday"`
	TimeToday []int  `json:"timeToday"`
}

// Note represents an Anki note.
type Note struct {
	ID      int64
	GUID    string
	ModelID int64
	Mod     int64
	USN     int
	Tags    string
	Fields  []string // Parsed from flds
	RawFlds string   // Original flds string
	SFLD    string   // Sort field
	CSum    int64
	Flags   int
	Data    string
}

// Card represents an Anki card.
type Card struct {
	ID     int64
	NoteID int64
	DeckID int64
	Ord    int
	Mod    int64
	Type   int
	Queue  int
	Due    int
}

// checksum is the first 8 hex digits of the SHA-256 of the sort field.
func checksum(sfld string) int64 {
	sum := fmt.Sprintf("%x", sha256.Sum256([]byte(sfld)))
	csum, _ := strconv.ParseInt(sum[:8], 16, 64)
	return csum
}

const schema = `
CREATE TABLE col (
	id integer primary key, crt integer not null, mod integer not null,
	scm integer not null, ver integer not null, dty integer not null,
	usn integer not null, ls integer not null, conf text not null,
	models text not null, decks text not null, dconf text not null,
	tags text not null
);
CREATE TABLE notes (
	id integer primary key, guid text not null, mid integer not null,
	mod integer not null, usn integer not null, tags text not null,
	flds text not null, sfld integer not null, csum integer not null,
	flags integer not null, data text not null
);
CREATE TABLE cards (
	id integer primary key, nid integer not null, did integer not null,
	ord integer not null, mod integer not null, usn integer not null,
	type integer not null, queue integer not null, due integer not null,
	ivl integer not null, factor integer not null, reps integer not null,
	lapses integer not null, left integer not null, odue integer not null,
	odid integer not null, flags integer not null, data text not null
);
CREATE TABLE revlog (
	id integer primary key, cid integer not null, usn integer not null,
	ease integer not null, ivl integer not null, lastIvl integer not null,
	factor integer not null, time integer not null, type integer not null
);
CREATE TABLE graves (
	usn integer not null, oid integer not null, type integer not null
);
CREATE INDEX ix_notes_usn on notes (usn);
CREATE INDEX ix_cards_usn on cards (usn);
CREATE INDEX ix_revlog_usn on revlog (usn);
CREATE INDEX ix_cards_nid on cards (nid);
CREATE INDEX ix_cards_sched on cards (did, queue, due);
CREATE INDEX ix_revlog_cid on revlog (cid);
CREATE INDEX ix_notes_csum on notes (csum);
`
