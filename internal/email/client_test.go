package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func validParams() SendParams {
	return SendParams{
		To:       "ursula_le_guin@gmail.com",
		Subject:  "Welcome!",
		HTMLBody: "<p>hello</p>",
		TextBody: "hello",
	}
}

func TestClient_Send(t *testing.T) {
	var gotReq sendRequest
	var gotToken string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/email" {
			t.Errorf("expected path /email, got %s", r.URL.Path)
		}
		gotToken = r.Header.Get("X-Postmark-Server-Token")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token", "newsletter@example.com", 5*time.Second)

	if err := client.Send(context.Background(), validParams()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotToken != "secret-token" {
		t.Errorf("expected server token header, got %q", gotToken)
	}
	if gotReq.From != "newsletter@example.com" {
		t.Errorf("unexpected From: %s", gotReq.From)
	}
	if gotReq.To != "ursula_le_guin@gmail.com" {
		t.Errorf("unexpected To: %s", gotReq.To)
	}
	if gotReq.Subject != "Welcome!" {
		t.Errorf("unexpected Subject: %s", gotReq.Subject)
	}
	if gotReq.HTMLBody == "" || gotReq.TextBody == "" {
		t.Error("expected both bodies to be set")
	}
}

func TestClient_SendServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token", "newsletter@example.com", 5*time.Second)

	err := client.Send(context.Background(), validParams())
	if !errors.Is(err, ErrSendFailed) {
		t.Fatalf("expected ErrSendFailed, got %v", err)
	}
}

func TestClient_SendTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token", "newsletter@example.com", 50*time.Millisecond)

	err := client.Send(context.Background(), validParams())
	if !errors.Is(err, ErrSendFailed) {
		t.Fatalf("expected ErrSendFailed on timeout, got %v", err)
	}
}

func TestClient_SendInvalidParams(t *testing.T) {
	client := NewClient("http://localhost:0", "token", "newsletter@example.com", time.Second)

	tests := []struct {
		name   string
		mutate func(*SendParams)
	}{
		{"missing_to", func(p *SendParams) { p.To = "" }},
		{"missing_subject", func(p *SendParams) { p.Subject = "" }},
		{"missing_html", func(p *SendParams) { p.HTMLBody = "" }},
		{"missing_text", func(p *SendParams) { p.TextBody = "" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params := validParams()
			test.mutate(&params)
			if err := client.Send(context.Background(), params); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}
