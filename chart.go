package kana

// Chart rows, one per vowel.
const (
	RowA = iota
	RowI
	RowU
	RowE
	RowO
)

// NumRows is the number of vowel rows in every chart.
const NumRows = 5

// The three charts are row-aligned: a cell is either empty in all of them or
// holds the same syllable in each script.
//
// The u row lists ゔ right after う, so its cells from column 1 on sit one
// column to the right of the other rows (and the row is one cell longer).
// Table projections read the cells where they are; conversions scan every
// cell and are unaffected.
var romajiChart = [NumRows][]string{
	{"a", "ka", "ga", "sa", "za", "ta", "da", "na", "ha", "ba", "pa", "ma", "ya", "ra", "wa", "n", "kya", "gya", "ja", "sha", "cha", "nya", "hya", "bya", "pya", "mya", "rya"},
	{"i", "ki", "gi", "shi", "ji", "chi", "ji", "ni", "hi", "bi", "pi", "mi", "", "ri", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	{"u", "vu", "ku", "gu", "su", "zu", "tsu", "zu", "nu", "fu", "bu", "pu", "mu", "yu", "ru", "", "", "kyu", "gyu", "ju", "shu", "chu", "nyu", "hyu", "byu", "pyu", "myu", "ryu"},
	{"e", "ke", "ge", "se", "ze", "te", "de", "ne", "he", "be", "pe", "me", "", "re", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	{"o", "ko", "go", "so", "zo", "to", "do", "no", "ho", "bo", "po", "mo", "yo", "ro", "wo", "", "kyo", "gyo", "jo", "sho", "cho", "nyo", "hyo", "byo", "pyo", "myo", "ryo"},
}

var hiraganaChart = [NumRows][]string{
	{"あ", "か", "が", "さ", "ざ", "た", "だ", "な", "は", "ば", "ぱ", "ま", "や", "ら", "わ", "ん", "きゃ", "ぎゃ", "じゃ", "しゃ", "ちゃ", "にゃ", "ひゃ", "びゃ", "ぴゃ", "みゃ", "りゃ"},
	{"い", "き", "ぎ", "し", "じ", "ち", "ぢ", "に", "ひ", "び", "ぴ", "み", "", "り", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	{"う", "ゔ", "く", "ぐ", "す", "ず", "つ", "づ", "ぬ", "ふ", "ぶ", "ぷ", "む", "ゆ", "る", "", "", "きゅ", "ぎゅ", "じゅ", "しゅ", "ちゅ", "にゅ", "ひゅ", "びゅ", "ぴゅ", "みゅ", "りゅ"},
	{"え", "け", "げ", "せ", "ぜ", "て", "で", "ね", "へ", "べ", "ぺ", "め", "", "れ", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	{"お", "こ", "ご", "そ", "ぞ", "と", "ど", "の", "ほ", "ぼ", "ぽ", "も", "よ", "ろ", "を", "", "きょ", "ぎょ", "じょ", "しょ", "ちょ", "にょ", "ひょ", "びょ", "ぴょ", "みょ", "りょ"},
}

var katakanaChart = [NumRows][]string{
	{"ア", "カ", "ガ", "サ", "ザ", "タ", "ダ", "ナ", "ハ", "バ", "パ", "マ", "ヤ", "ラ", "ワ", "ン", "キャ", "ギャ", "ジャ", "シャ", "チャ", "ニャ", "ヒャ", "ビャ", "ピャ", "ミャ", "リャ"},
	{"イ", "キ", "ギ", "シ", "ジ", "チ", "ヂ", "ニ", "ヒ", "ビ", "ピ", "ミ", "", "リ", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	{"ウ", "ヴ", "ク", "グ", "ス", "ズ", "ツ", "ヅ", "ヌ", "フ", "ブ", "プ", "ム", "ユ", "ル", "", "", "キュ", "ギュ", "ジュ", "シュ", "チュ", "ニュ", "ヒュ", "ビュ", "ピュ", "ミュ", "リュ"},
	{"エ", "ケ", "ゲ", "セ", "ゼ", "テ", "デ", "ネ", "ヘ", "ベ", "ペ", "メ", "", "レ", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	{"オ", "コ", "ゴ", "ソ", "ゾ", "ト", "ド", "ノ", "ホ", "ボ", "ポ", "モ", "ヨ", "ロ", "ヲ", "", "キョ", "ギョ", "ジョ", "ショ", "チョ", "ニョ", "ヒョ", "ビョ", "ピョ", "ミョ", "リョ"},
}

// Small vowels used to compose digraphs missing from the charts (ファ, ウィ, ツァ).
var (
	smallHiragana = [NumRows]string{"ぁ", "ぃ", "ぅ", "ぇ", "ぉ"}
	smallKatakana = [NumRows]string{"ァ", "ィ", "ゥ", "ェ", "ォ"}
	smallRomaji   = [NumRows]string{"a", "i", "u", "e", "o"}
)

func chartFor(s Script) *[NumRows][]string {
	switch s {
	case Hiragana:
		return &hiraganaChart
	case Katakana:
		return &katakanaChart
	default:
		return &romajiChart
	}
}

// Cell returns the chart cell at (row, col) in the given script, or "" when
// the cell is empty or outside the chart.
func Cell(s Script, row, col int) string {
	chart := chartFor(s)
	if row < 0 || row >= NumRows || col < 0 || col >= len(chart[row]) {
		return ""
	}
	return chart[row][col]
}

// Find returns the position of the first cell equal to value, scanning rows
// top to bottom and each row left to right.
func Find(s Script, value string) (row, col int, ok bool) {
	if value == "" {
		return 0, 0, false
	}
	chart := chartFor(s)
	for r := range chart {
		for c, cell := range chart[r] {
			if cell == value {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// smallVowel reports the romaji letter of a small vowel glyph in the given
// kana script.
func smallVowel(s Script, glyph string) (string, bool) {
	var small *[NumRows]string
	switch s {
	case Hiragana:
		small = &smallHiragana
	case Katakana:
		small = &smallKatakana
	default:
		return "", false
	}
	for i, g := range small {
		if g == glyph {
			return smallRomaji[i], true
		}
	}
	return "", false
}
