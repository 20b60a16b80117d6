package cmdutil

import (
	"testing"

	"github.com/salmonumbrella/notion-query/internal/notion"
)

func TestNormalizeNotionID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare id passes through",
			input: "0123456789abcdef0123456789abcdef",
			want:  "0123456789abcdef0123456789abcdef",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  db123  ",
			want:  "db123",
		},
		{
			name:  "URL extracts id",
			input: "https://www.notion.so/ws/Habits-0123456789abcdef0123456789abcdef",
			want:  "0123456789abcdef0123456789abcdef",
		},
		{
			name:    "empty input",
			input:   "  ",
			wantErr: true,
		},
		{
			name:    "URL without id",
			input:   "https://www.notion.so/ws/just-a-slug",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeNotionID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseProperty_Types(t *testing.T) {
	tests := []struct {
		input string
		want  notion.PageProperty
	}{
		{"Streak=1", notion.PageProperty{Name: "Streak", Value: notion.NumberValue(1)}},
		{"Weight=2.5", notion.PageProperty{Name: "Weight", Value: notion.NumberValue(2.5)}},
		{"Habit=Drink water", notion.PageProperty{Name: "Habit", Value: notion.TextValue("Drink water")}},
		{"Note=", notion.PageProperty{Name: "Note", Value: notion.TextValue("")}},
		{"Tag=a=b", notion.PageProperty{Name: "Tag", Value: notion.TextValue("a=b")}},
	}

	for _, tt := range tests {
		got, err := ParseProperty(tt.input)
		if err != nil {
			t.Errorf("ParseProperty(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseProperty(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestParseProperty_Date(t *testing.T) {
	got, err := ParseProperty("Done=2023-04-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value.Raw() != "2023-04-12T00:00:00Z" {
		t.Errorf("expected date value, got %v", got.Value.Raw())
	}

	got, err = ParseProperty("Done=2023-04-12T09:30:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value.Raw() != "2023-04-12T09:30:00Z" {
		t.Errorf("expected datetime value, got %v", got.Value.Raw())
	}
}

func TestParseProperty_Invalid(t *testing.T) {
	if _, err := ParseProperty("no-equals"); err == nil {
		t.Error("expected error for missing separator")
	}
	if _, err := ParseProperty("=value"); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestParseProperties_PreservesOrder(t *testing.T) {
	properties, err := ParseProperties([]string{"Status=todo", "Status=done"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(properties))
	}
	if properties[1].Value != notion.TextValue("done") {
		t.Error("expected order preserved for last-write-wins")
	}
}

func TestParseProperties_Error(t *testing.T) {
	if _, err := ParseProperties([]string{"ok=1", "bad"}); err == nil {
		t.Error("expected error to propagate")
	}
}
