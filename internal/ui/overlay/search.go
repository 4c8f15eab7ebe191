package overlay

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchMsg carries the current query on every edit for live filtering.
type SearchMsg struct {
	Query string
}

// SearchBar is the single-line query bar anchored below the board. One input
// drives the whole filter: free text narrows by title, id or tag substring,
// while "#tag" and "!high"/"!medium"/"!low" tokens select exact tags and
// priorities.
type SearchBar struct {
	input   textinput.Model
	styles  *Styles
	matches int
}

// NewSearchBar creates a focused, empty search bar.
func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "text, #tag, !high"
	ti.CharLimit = 80
	ti.Width = 60
	ti.Focus()

	return &SearchBar{input: ti, styles: New()}
}

// SetMatchCount updates the live result counter.
func (s *SearchBar) SetMatchCount(n int) {
	s.matches = n
}

func searchCmd(query string) tea.Cmd {
	return func() tea.Msg { return SearchMsg{Query: query} }
}

// Init starts the input cursor blinking.
func (s *SearchBar) Init() tea.Cmd {
	return textinput.Blink
}

// Update edits the query in place. Enter closes the bar and keeps the filter;
// Esc clears the filter on the way out.
func (s *SearchBar) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return s, func() tea.Msg { return CloseOverlayMsg{} }

		case "esc":
			s.input.SetValue("")
			return s, tea.Batch(
				searchCmd(""),
				func() tea.Msg { return CloseOverlayMsg{} },
			)
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if after := s.input.Value(); after != before {
		return s, tea.Batch(cmd, searchCmd(after))
	}
	return s, cmd
}

// View renders the bar with the match counter while a query is active.
func (s *SearchBar) View() string {
	line := s.input.View()
	if s.input.Value() != "" {
		line += s.styles.BarMeta.Render(fmt.Sprintf("  %d match(es)", s.matches))
	}
	return s.styles.Bar.Render(line)
}

// Title is empty; the bar renders without a frame.
func (s *SearchBar) Title() string {
	return ""
}

// Size reports a zero width, which the root view treats as full width.
func (s *SearchBar) Size() (width, height int) {
	return 0, 1
}

// Editing reports whether the query input has focus.
func (s *SearchBar) Editing() bool {
	return s.input.Focused()
}
