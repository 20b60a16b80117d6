package notion

import (
	"testing"
	"time"
)

func TestEqualFilter_Text(t *testing.T) {
	filter, err := EqualFilter("Name", Text("Drink water"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inner, ok := filter["filter"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected filter key with object value, got %#v", filter)
	}
	if inner["property"] != "Name" {
		t.Errorf("expected property 'Name', got %v", inner["property"])
	}

	richText, ok := inner["rich_text"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected rich_text branch, got %#v", inner)
	}
	if richText["equals"] != "Drink water" {
		t.Errorf("expected equals 'Drink water', got %v", richText["equals"])
	}
	if _, hasDate := inner["date"]; hasDate {
		t.Error("expected no date branch for a text value")
	}
}

func TestEqualFilter_DateDiscardsTimeOfDay(t *testing.T) {
	timestamps := []time.Time{
		time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 4, 12, 9, 30, 15, 0, time.UTC),
		time.Date(2023, 4, 12, 23, 59, 59, 999000000, time.UTC),
	}

	for _, ts := range timestamps {
		filter, err := EqualFilter("Due", DateOf(ts))
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", ts, err)
		}

		inner := filter["filter"].(map[string]interface{})
		date, ok := inner["date"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected date branch, got %#v", inner)
		}
		if date["equals"] != "2023-04-12" {
			t.Errorf("expected equals '2023-04-12' for %v, got %v", ts, date["equals"])
		}
	}
}

func TestEqualFilter_EmptyProperty(t *testing.T) {
	_, err := EqualFilter("", Text("x"))
	if err == nil {
		t.Fatal("expected error for empty property name")
	}
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestEqualFilter_EmptyValue(t *testing.T) {
	_, err := EqualFilter("Name", Text(""))
	if err == nil {
		t.Fatal("expected error for empty text value")
	}
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestEqualFilter_AbsentValue(t *testing.T) {
	_, err := EqualFilter("Name", FilterValue{})
	if err == nil {
		t.Fatal("expected error for absent value")
	}
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestEqualFilter_ValidationOrder(t *testing.T) {
	// An empty property name wins over an empty value.
	_, err := EqualFilter("", Text(""))
	if err == nil {
		t.Fatal("expected error")
	}

	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Field != "property" {
		t.Errorf("expected field 'property', got %q", ve.Field)
	}
}
