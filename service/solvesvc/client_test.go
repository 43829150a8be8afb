package solvesvc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientSolve(t *testing.T) {
	want := SolveResponse{Solution: strings.Repeat("123456789", 9), Passes: 3}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/solve" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req SolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Puzzle) != 81 {
			t.Errorf("puzzle has %d characters, want 81", len(req.Puzzle))
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := client.Solve(context.Background(), &SolveRequest{Puzzle: strings.Repeat(".", 81)})
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if got.Solution != want.Solution || got.Passes != want.Passes {
		t.Errorf("Solve() = %+v, want %+v", got, want)
	}
}

func TestClientSolveErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Puzzle has no solution"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = client.Solve(context.Background(), &SolveRequest{}); err == nil {
		t.Fatal("Solve() error = nil, want non-nil on non-200 status")
	}
}
