package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildCategoryMap(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  CategoryMap
	}{
		{
			name:  "empty column",
			cells: nil,
			want:  CategoryMap{},
		},
		{
			name:  "header only",
			cells: []string{"Category"},
			want:  CategoryMap{},
		},
		{
			name:  "first subcategory becomes placeholder",
			cells: []string{"header", "Food - Lunch", "Food - Dinner", "Travel - Gas"},
			want:  CategoryMap{"Food": {"", "Dinner"}, "Travel": {""}},
		},
		{
			name:  "duplicate subcategory deduplicated",
			cells: []string{"header", "Food - Lunch", "Food - Dinner", "Food - Dinner"},
			want:  CategoryMap{"Food": {"", "Dinner"}},
		},
		{
			name:  "whitespace trimmed around both parts",
			cells: []string{"header", "  Home -  Rent ", "Home -Utilities"},
			want:  CategoryMap{"Home": {"", "Utilities"}},
		},
		{
			name:  "split on first dash only",
			cells: []string{"header", "Food - To-Go", "Food - Dinner"},
			want:  CategoryMap{"Food": {"", "Dinner"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildCategoryMap(tt.cells)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildCategoryMap_SingleMainOnlyPlaceholder(t *testing.T) {
	// Every subcategory seen exactly once leaves only placeholders behind.
	got, err := BuildCategoryMap([]string{"header", "Food - Lunch", "Food - Dinner", "Travel - Gas"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subs := got["Travel"]; len(subs) != 1 || subs[0] != "" {
		t.Errorf("Travel = %v, want single empty placeholder", subs)
	}
}

func TestBuildCategoryMap_Idempotent(t *testing.T) {
	cells := []string{"header", "Food - Lunch", "Food - Dinner", "Travel - Gas", "Food - Lunch"}
	first, err := BuildCategoryMap(cells)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildCategoryMap(cells)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second run differs: %v vs %v", first, second)
	}
}

func TestBuildCategoryMap_MalformedRow(t *testing.T) {
	_, err := BuildCategoryMap([]string{"header", "Food - Lunch", "no separator"})
	if err == nil {
		t.Fatal("expected error for cell without separator")
	}
	if !errors.Is(err, ErrMalformedRow) {
		t.Errorf("expected ErrMalformedRow, got: %v", err)
	}
}
