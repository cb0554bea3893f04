package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/kana"
	"github.com/f3rmion/kana/internal/tui/bigchar"
	"github.com/samber/lo"
)

// QuizOptions configures a quiz.
type QuizOptions struct {
	Columns []kana.Column
	Count   int
	Unique  bool
	Prompt  kana.Script // script the question is shown in
	Answer  kana.Script // script the answer is typed in

	// Pool, when set, replaces Columns as the source of questions, e.g. the
	// kana of an imported Anki deck.
	Pool []kana.Mora

	// Sampler draws the questions; nil uses the process-wide generator.
	Sampler *kana.Sampler
}

// Mistake records a wrong answer.
type Mistake struct {
	Mora  kana.Mora
	Given string
}

// QuizModel is the Bubble Tea model of a kana quiz.
type QuizModel struct {
	opts  QuizOptions
	table kana.Table
	items []kana.Mora
	input textinput.Model

	current  int
	score    int
	mistakes []Mistake

	checked   bool // the current answer has been graded
	correct   bool
	done      bool
	showChart bool

	width  int
	height int
}

// NewQuiz draws the questions and returns a ready model.
func NewQuiz(opts QuizOptions) (QuizModel, error) {
	if opts.Prompt == opts.Answer {
		return QuizModel{}, errors.New("prompt and answer scripts must differ")
	}

	table := kana.GetTable(opts.Columns)
	items, err := drawItems(table, opts)
	if err != nil {
		return QuizModel{}, fmt.Errorf("drawing questions: %w", err)
	}
	if len(items) == 0 {
		return QuizModel{}, errors.New("no questions to ask")
	}

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("answer in %s", opts.Answer)
	ti.CharLimit = 12
	ti.Width = 20
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	ti.Focus()

	return QuizModel{
		opts:  opts,
		table: table,
		items: items,
		input: ti,
	}, nil
}

func drawItems(table kana.Table, opts QuizOptions) ([]kana.Mora, error) {
	sampler := opts.Sampler
	if sampler == nil {
		sampler = kana.NewSampler(nil)
	}

	if len(opts.Pool) > 0 {
		// Without a count a deck quiz asks each of its kana once.
		count := opts.Count
		if opts.Unique || count <= 0 {
			distinct := len(lo.Uniq(lo.Filter(opts.Pool, func(m kana.Mora, _ int) bool { return m.IsValid() })))
			if count <= 0 || count > distinct {
				count = distinct
			}
		}
		if count == 0 {
			return nil, kana.ErrSamplerExhausted
		}
		return sampler.Choose(opts.Pool, count, opts.Unique || opts.Count <= 0)
	}
	return sampler.RandomN(table, opts.Count, opts.Unique)
}

// Init initializes the model.
func (m QuizModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.showChart = !m.showChart
			return m, nil
		case "enter":
			switch {
			case m.done:
				return m, tea.Quit
			case m.checked:
				m.next()
			default:
				m.grade()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.checked || m.done {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// grade checks the typed answer against the current question.
func (m *QuizModel) grade() {
	given := strings.TrimSpace(m.input.Value())
	if given == "" {
		return
	}

	item := m.items[m.current]
	m.correct = Matches(item, m.opts.Answer, given)
	if m.correct {
		m.score++
	} else {
		m.mistakes = append(m.mistakes, Mistake{Mora: item, Given: given})
	}
	m.checked = true
}

func (m *QuizModel) next() {
	m.checked = false
	m.input.Reset()
	m.current++
	if m.current >= len(m.items) {
		m.done = true
	}
}

// Matches reports whether given spells m in script s. Romaji answers are
// compared case-insensitively.
func Matches(m kana.Mora, s kana.Script, given string) bool {
	given = strings.TrimSpace(given)
	if s != kana.Romaji {
		return given == m.In(s)
	}
	return strings.EqualFold(given, m.Romaji())
}

// Score returns the number of correct answers so far.
func (m QuizModel) Score() int { return m.score }

// Total returns the number of questions.
func (m QuizModel) Total() int { return len(m.items) }

// Done reports whether every question has been answered.
func (m QuizModel) Done() bool { return m.done }

// Mistakes returns the wrong answers so far.
func (m QuizModel) Mistakes() []Mistake { return append([]Mistake(nil), m.mistakes...) }

// Current returns the question being asked.
func (m QuizModel) Current() (kana.Mora, bool) {
	if m.done || m.current >= len(m.items) {
		return kana.Mora{}, false
	}
	return m.items[m.current], true
}

// View renders the UI.
func (m QuizModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render(" かな Quiz ") + "  " +
		SubtitleStyle.Render(fmt.Sprintf("%s → %s", m.opts.Prompt, m.opts.Answer))
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.done:
		b.WriteString(m.renderSummary())
	case m.showChart:
		b.WriteString(BoxStyle.Render(FormatTable(m.table, m.opts.Prompt)))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderQuestion())
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help()))

	return ContentStyle.Render(b.String())
}

func (m QuizModel) renderQuestion() string {
	var b strings.Builder

	b.WriteString(ProgressStyle.Render(fmt.Sprintf("Question %d/%d  •  Score %d", m.current+1, len(m.items), m.score)))
	b.WriteString("\n")

	item := m.items[m.current]
	glyph := item.In(m.opts.Prompt)
	var card string
	if m.opts.Prompt != kana.Romaji && bigchar.IsAvailable() {
		cols := 12 * len([]rune(glyph))
		if art := bigchar.GetCached(glyph, cols, 6); art != "" {
			card = BigGlyphStyle.Render(art)
		}
	}
	if card == "" {
		card = GlyphStyle.Render(glyph)
	}
	b.WriteString(CardStyle.Render(card))
	b.WriteString("\n\n  ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.checked {
		b.WriteString("\n  ")
		if m.correct {
			b.WriteString(CorrectStyle.Render("✓ correct"))
		} else {
			b.WriteString(WrongStyle.Render(fmt.Sprintf("✗ %s is %s", glyph, item.In(m.opts.Answer))))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m QuizModel) renderSummary() string {
	var lines []string

	pct := 0
	if len(m.items) > 0 {
		pct = m.score * 100 / len(m.items)
	}
	lines = append(lines,
		LabelStyle.Render("Score:")+" "+ValueStyle.Render(fmt.Sprintf("%d/%d (%d%%)", m.score, len(m.items), pct)))

	if len(m.mistakes) > 0 {
		lines = append(lines, "", SubtitleStyle.Render("Mistakes"))
		for _, mk := range m.mistakes {
			lines = append(lines, fmt.Sprintf("  %s  %s  %s",
				WrongStyle.Render(mk.Mora.In(m.opts.Prompt)),
				ValueStyle.Render(mk.Mora.In(m.opts.Answer)),
				HelpStyle.Render("you typed "+mk.Given),
			))
		}
	}

	return BoxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func (m QuizModel) help() string {
	switch {
	case m.done:
		return "enter/esc: quit"
	case m.showChart:
		return "tab: back to quiz • esc: quit"
	case m.checked:
		return "enter: next • tab: chart • esc: quit"
	default:
		return "enter: check • tab: chart • esc: quit"
	}
}
