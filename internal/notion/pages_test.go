package notion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUpdatePage_Success(t *testing.T) {
	var body map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH method, got %s", r.Method)
		}
		if r.URL.Path != "/v1/pages/page123" {
			t.Errorf("expected path /v1/pages/page123, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Page{
			Object: "page",
			ID:     "page123",
		})
	}))
	defer server.Close()

	client := NewClient("test-token").WithBaseURL(server.URL)
	page, err := client.UpdatePage(context.Background(), "page123", []PageProperty{
		{Name: "Streak", Value: NumberValue(1)},
		{Name: "Habit", Value: TextValue("Drink water")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.ID != "page123" {
		t.Errorf("expected page ID 'page123', got %q", page.ID)
	}

	values, ok := body["properties"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected properties in request body, got %#v", body)
	}
	if values["Streak"] != float64(1) {
		t.Errorf("expected Streak=1 in body, got %v", values["Streak"])
	}
	if values["Habit"] != "Drink water" {
		t.Errorf("expected Habit='Drink water' in body, got %v", values["Habit"])
	}
}

func TestUpdatePage_EmptyProperties(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClient("test-token").WithBaseURL(server.URL)
	_, err := client.UpdatePage(context.Background(), "page123", nil)

	if err == nil {
		t.Fatal("expected error for empty properties")
	}
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
	if requests != 0 {
		t.Errorf("expected no network call, server saw %d requests", requests)
	}
}

func TestUpdatePage_APIError(t *testing.T) {
	statuses := []int{400, 404, 429, 500}

	for _, status := range statuses {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Object: "error", Status: status, Code: "x", Message: "y"})
		}))

		client := NewClient("test-token").WithBaseURL(server.URL)
		_, err := client.UpdatePage(context.Background(), "page123", []PageProperty{
			{Name: "Streak", Value: NumberValue(1)},
		})
		server.Close()

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError for status %d, got %T", status, err)
		}
		if apiErr.StatusCode != status {
			t.Errorf("expected status code %d, got %d", status, apiErr.StatusCode)
		}
	}
}

func TestUpdatePage_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient("test-token").WithBaseURL(server.URL)
	_, err := client.UpdatePage(context.Background(), "page123", []PageProperty{
		{Name: "Streak", Value: NumberValue(1)},
	})

	if !IsTransportError(err) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
}
