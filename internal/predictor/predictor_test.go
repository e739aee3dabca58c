package predictor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProbabilitySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/predict" {
			t.Errorf("expected /predict, got %s", r.URL.Path)
		}

		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["user_id"] != "u1" || req["knowledge_id"] != "fractions" {
			t.Errorf("unexpected request body: %v", req)
		}

		json.NewEncoder(w).Encode(map[string]float64{"probability": 0.72})
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.Probability(context.Background(), "u1", "fractions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 0.72 {
		t.Fatalf("expected 0.72, got %f", p)
	}
}

func TestProbabilityServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.Probability(context.Background(), "u1", "fractions")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if p != 0 {
		t.Fatalf("expected 0 on error, got %f", p)
	}
}

func TestProbabilityMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.Probability(context.Background(), "u1", "fractions")
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
	if p != 0 {
		t.Fatalf("expected 0 on error, got %f", p)
	}
}

func TestProbabilityOutOfRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]float64{"probability": 1.5})
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.Probability(context.Background(), "u1", "fractions")
	if err == nil {
		t.Fatal("expected error for out-of-range probability")
	}
	if p != 0 {
		t.Fatalf("expected 0 on error, got %f", p)
	}
}

func TestProbabilityUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1")
	p, err := c.Probability(context.Background(), "u1", "fractions")
	if err == nil {
		t.Fatal("expected error for unreachable service")
	}
	if p != 0 {
		t.Fatalf("expected 0 on error, got %f", p)
	}
}

func TestFromEnvUnset(t *testing.T) {
	t.Setenv(envURL, "")
	if c := FromEnv(); c != nil {
		t.Fatal("expected nil client when env is unset")
	}
}

func TestFromEnvSet(t *testing.T) {
	t.Setenv(envURL, "http://predictor.local")
	c := FromEnv()
	if c == nil {
		t.Fatal("expected client when env is set")
	}
	if c.baseURL != "http://predictor.local" {
		t.Fatalf("unexpected base URL: %s", c.baseURL)
	}
}
