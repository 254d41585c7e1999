package core

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// BudgetEntry is a single record submitted by the client. It is never
	// stored server-side beyond the one append call.
	BudgetEntry struct {
		Date         string `json:"date"`
		CategoryMain string `json:"categoryMain"`
		CategorySub  string `json:"categorySub"`
		Amount       string `json:"amount"`
		Mode         string `json:"mode"`
		Comment      string `json:"comment"`
	}

	// CategoryMap maps a main category to its ordered list of subcategories.
	CategoryMap map[string][]string
)

var (
	ErrEmptyDate     = errors.New("empty date")
	ErrEmptyCategory = errors.New("empty main category")
	ErrEmptyAmount   = errors.New("empty amount")
)

// Category renders the combined category cell as written to the sheet.
func (e BudgetEntry) Category() string {
	return e.CategoryMain + " - " + e.CategorySub
}

// Columns returns the entry as the five spreadsheet columns in fixed order:
// date, combined category, amount, mode, comment.
func (e BudgetEntry) Columns() []string {
	return []string{e.Date, e.Category(), e.Amount, e.Mode, e.Comment}
}

// Validate checks the required fields. Values are otherwise free-form
// strings and written to the sheet verbatim.
func (e BudgetEntry) Validate() error {
	if strings.TrimSpace(e.Date) == "" {
		return ErrEmptyDate
	}
	if strings.TrimSpace(e.CategoryMain) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(e.Amount) == "" {
		return ErrEmptyAmount
	}
	return nil
}

func (e BudgetEntry) String() string {
	return fmt.Sprintf("%s %s %s", e.Date, e.Category(), e.Amount)
}
