// Package daily renders the daily overview: today's tasks, overdue tasks and
// what was finished yesterday.
package daily

import (
	"fmt"
	"strings"

	"github.com/tabula-app/tabula/internal/domain"
	"github.com/tabula-app/tabula/internal/services/daily"
	"github.com/tabula-app/tabula/internal/ui/styles"
)

// View is the daily overview list. It holds a cached copy of the buckets and
// is refreshed by the application whenever a change signal arrives.
type View struct {
	buckets daily.Buckets
	styles  *styles.Styles
	width   int
	height  int
}

// NewView creates an empty daily view.
func NewView(s *styles.Styles) *View {
	return &View{styles: s}
}

// SetBuckets replaces the cached buckets.
func (v *View) SetBuckets(b daily.Buckets) {
	v.buckets = b
}

// SetDimensions updates the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Render renders the overview.
func (v *View) Render() string {
	var b strings.Builder

	v.renderSection(&b, fmt.Sprintf("Due Today (%d)", len(v.buckets.DueToday)), v.buckets.DueToday)
	v.renderSection(&b, fmt.Sprintf("Overdue (%d)", len(v.buckets.Overdue)), v.buckets.Overdue)
	v.renderSection(&b, fmt.Sprintf("Completed Yesterday (%d)", len(v.buckets.CompletedYesterday)), v.buckets.CompletedYesterday)

	return b.String()
}

func (v *View) renderSection(b *strings.Builder, title string, tasks []domain.Task) {
	b.WriteString(v.styles.SectionHeader.Render(title))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(v.styles.EmptyHint.Render("  nothing here"))
		b.WriteString("\n")
		return
	}

	for _, task := range tasks {
		badge := v.styles.PriorityBadge(task.Priority.String()).Render(task.Priority.Badge())
		line := fmt.Sprintf("  %s %s", badge, v.styles.ListRow.Render(task.Title))
		if task.DueDate != "" {
			line += " " + v.styles.TaskMeta.Render(task.DueDate)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}
