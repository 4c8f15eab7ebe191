package daily

import (
	"strings"
	"testing"

	"github.com/tabula-app/tabula/internal/domain"
	"github.com/tabula-app/tabula/internal/services/daily"
	"github.com/tabula-app/tabula/internal/ui/styles"
)

func TestView_Render(t *testing.T) {
	v := NewView(styles.New())
	v.SetBuckets(daily.Buckets{
		DueToday: []domain.Task{
			{ID: "t1", Title: "Stand-up notes", Priority: domain.PriorityHigh, DueDate: "2026-03-14"},
		},
		Overdue: []domain.Task{
			{ID: "t2", Title: "Expense report", Priority: domain.PriorityLow, DueDate: "2026-03-01"},
		},
	})

	out := v.Render()
	for _, want := range []string{
		"Due Today (1)",
		"Overdue (1)",
		"Completed Yesterday (0)",
		"Stand-up notes",
		"Expense report",
		"2026-03-01",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered view missing %q", want)
		}
	}
}

func TestView_RenderEmpty(t *testing.T) {
	v := NewView(styles.New())
	out := v.Render()
	if !strings.Contains(out, "nothing here") {
		t.Error("empty sections should render the placeholder hint")
	}
}
