package board

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tabula-app/tabula/internal/domain"
	"github.com/tabula-app/tabula/internal/ui/styles"
)

// renderCard renders a task card
func renderCard(task domain.Task, isCursor bool, now time.Time, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isCursor {
		cardStyle = s.CardActive
	}
	cardStyle = cardStyle.Width(width)

	priorityBadge := s.PriorityBadge(task.Priority.String()).Render(task.Priority.Badge())

	// Title - truncate if needed
	maxTitleLen := width - 4
	title := task.Title
	if maxTitleLen > 1 && len(title) > maxTitleLen {
		title = title[:maxTitleLen-1] + "…"
	}

	cursor := ""
	if isCursor {
		cursor = "▶"
	}

	metaParts := []string{priorityBadge}
	if due := renderDueDate(task, now, s); due != "" {
		metaParts = append(metaParts, due)
	}
	if done, total := task.SubtaskProgress(); total > 0 {
		metaParts = append(metaParts, s.TaskMeta.Render(fmt.Sprintf("☑ %d/%d", done, total)))
	}
	if len(task.Tags) > 0 {
		metaParts = append(metaParts, s.Tag.Render("#"+strings.Join(task.Tags, " #")))
	}

	titleLine := cursor + s.TaskTitle.Render(title)
	metaLine := lipgloss.JoinHorizontal(lipgloss.Left, strings.Join(metaParts, " • "))

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, metaLine)
	return cardStyle.Render(content)
}

// renderDueDate formats the due-date badge, highlighting today and overdue.
func renderDueDate(task domain.Task, now time.Time, s *styles.Styles) string {
	if task.DueDate == "" {
		return ""
	}
	switch {
	case task.Status == domain.StatusDone:
		return s.TaskMeta.Render(task.DueDate)
	case task.IsOverdue(now):
		return s.Overdue.Render("⚠ " + task.DueDate)
	case task.IsDueToday(now):
		return s.DueSoon.Render("● today")
	default:
		return s.TaskMeta.Render(task.DueDate)
	}
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, now time.Time, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, now, width, s)
}
