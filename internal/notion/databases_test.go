package notion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestQueryDatabase_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST method, got %s", r.Method)
		}
		if r.URL.Path != "/v1/databases/db123/query" {
			t.Errorf("expected path /v1/databases/db123/query, got %s", r.URL.Path)
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(QueryResult{
			Object: "list",
			Results: []Page{
				{Object: "page", ID: "page1"},
				{Object: "page", ID: "page2"},
			},
			HasMore: false,
		})
	}))
	defer server.Close()

	client := NewClient("test-token").WithBaseURL(server.URL)
	result, err := client.QueryDatabase(context.Background(), "db123", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Object != "list" {
		t.Errorf("expected object 'list', got %q", result.Object)
	}
	if len(result.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(result.Results))
	}
	if result.Results[0].ID != "page1" || result.Results[1].ID != "page2" {
		t.Errorf("decoded results do not match server body: %#v", result.Results)
	}
	if result.HasMore {
		t.Error("expected has_more false")
	}
}

func TestQueryDatabase_EmptyID(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClient("test-token").WithBaseURL(server.URL)
	_, err := client.QueryDatabase(context.Background(), "", nil, nil)

	if err == nil {
		t.Fatal("expected error for empty database ID")
	}
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
	if requests != 0 {
		t.Errorf("expected no network call, server saw %d requests", requests)
	}
}

func TestQueryDatabase_MergesFragments(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(QueryResult{Object: "list"})
	}))
	defer server.Close()

	filter, err := EqualFilter("Habit", Text("Drink water"))
	if err != nil {
		t.Fatalf("unexpected filter error: %v", err)
	}
	sorter, err := SingleSorter("Date", Descending)
	if err != nil {
		t.Fatalf("unexpected sorter error: %v", err)
	}

	client := NewClient("test-token").WithBaseURL(server.URL)
	if _, err := client.QueryDatabase(context.Background(), "db123", filter, sorter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := body["filter"]; !ok {
		t.Error("expected merged body to contain filter key")
	}
	sorts, ok := body["sorts"].([]interface{})
	if !ok {
		t.Fatalf("expected merged body to contain sorts list, got %#v", body["sorts"])
	}
	if len(sorts) != 1 {
		t.Errorf("expected one sort entry, got %d", len(sorts))
	}
	entry := sorts[0].(map[string]interface{})
	if entry["property"] != "Date" || entry["direction"] != "descending" {
		t.Errorf("unexpected sort entry: %#v", entry)
	}
}

func TestQueryDatabase_DateFilterOnTheWire(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(QueryResult{Object: "list"})
	}))
	defer server.Close()

	filter, err := EqualFilter("Date", DateOf(time.Date(2023, 4, 12, 18, 45, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("unexpected filter error: %v", err)
	}

	client := NewClient("test-token").WithBaseURL(server.URL)
	if _, err := client.QueryDatabase(context.Background(), "db123", filter, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inner := body["filter"].(map[string]interface{})
	date := inner["date"].(map[string]interface{})
	if date["equals"] != "2023-04-12" {
		t.Errorf("expected calendar date on the wire, got %v", date["equals"])
	}
}

func TestQueryDatabase_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(ErrorResponse{
			Object: "error", Status: 404, Code: "object_not_found", Message: "Could not find database",
		})
	}))
	defer server.Close()

	client := NewClient("test-token").WithBaseURL(server.URL)
	_, err := client.QueryDatabase(context.Background(), "db123", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
}

func TestQueryDatabase_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient("test-token").WithBaseURL(server.URL)
	_, err := client.QueryDatabase(context.Background(), "db123", nil, nil)

	if !IsTransportError(err) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
}
