package aggregate

import (
	"strings"

	"github.com/personal-budgeting/budgeting/internal/models"
	"github.com/personal-budgeting/budgeting/internal/types"
	"github.com/ryanuber/go-glob"
)

// Filter narrows down a list of transactions. Zero values do not restrict.
type Filter struct {
	Month      types.Month
	Kind       models.Kind
	CategoryID string
	FromDate   string // inclusive, YYYY-MM-DD
	ToDate     string // inclusive, YYYY-MM-DD
	Note       string // glob pattern, matched case-insensitively
}

// FilterTransactions returns the transactions matching all set filters,
// keeping their order.
func FilterTransactions(transactions []models.Transaction, f Filter) []models.Transaction {
	pattern := notePattern(f.Note)

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !f.Month.IsZero() && !f.Month.Contains(t.Date) {
			continue
		}

		if f.Kind != "" && t.Kind != f.Kind {
			continue
		}

		if f.CategoryID != "" && t.CategoryID != f.CategoryID {
			continue
		}

		// Date keys are zero padded, string order equals chronological order
		if f.FromDate != "" && t.Date < f.FromDate {
			continue
		}

		if f.ToDate != "" && t.Date > f.ToDate {
			continue
		}

		if pattern != "" && !glob.Glob(pattern, strings.ToLower(t.Note)) {
			continue
		}

		filtered = append(filtered, t)
	}

	return filtered
}

// notePattern lowercases the pattern. A pattern without wildcards
// matches anywhere in the note.
func notePattern(note string) string {
	note = strings.ToLower(strings.TrimSpace(note))
	if note == "" {
		return ""
	}

	if !strings.Contains(note, glob.GLOB) {
		return glob.GLOB + note + glob.GLOB
	}

	return note
}
