package mailgun

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testConfig(baseURL string) Config {
	return Config{
		APIKey:  "test-key",
		Domain:  "mg.example.com",
		From:    "Calorie Joy <mailgun@mg.example.com>",
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	}
}

func TestClient_Send_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mg.example.com/messages" {
			t.Errorf("expected path /mg.example.com/messages, got %s", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "api" || pass != "test-key" {
			t.Errorf("expected basic auth api:test-key, got %s:%s", user, pass)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("content type = %q", ct)
		}

		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if got := r.PostFormValue("to"); got != "user@example.com" {
			t.Errorf("to = %q", got)
		}
		if got := r.PostFormValue("subject"); got != "Your Login OTP Code" {
			t.Errorf("subject = %q", got)
		}
		if got := r.PostFormValue("text"); got != "Your one-time password (OTP) is: 123456." {
			t.Errorf("text = %q", got)
		}
		if got := r.PostFormValue("from"); got != "Calorie Joy <mailgun@mg.example.com>" {
			t.Errorf("from = %q", got)
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id": "<msg-id>", "message": "Queued. Thank you."}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), server.Client())

	err := client.Send(context.Background(), "user@example.com", "Your Login OTP Code", "Your one-time password (OTP) is: 123456.")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
}

func TestClient_Send_Rejected(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message": "Invalid private key"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), server.Client())

	if err := client.Send(context.Background(), "user@example.com", "subject", "body"); err == nil {
		t.Fatal("expected error for upstream 401")
	}
}

func TestLoadConfig_DefaultFrom(t *testing.T) {
	t.Setenv("MAILGUN_API_KEY", "k")
	t.Setenv("MAILGUN_DOMAIN", "mg.example.com")
	t.Setenv("MAILGUN_FROM", "")
	t.Setenv("MAILGUN_BASE_URL", "")

	cfg := LoadConfig()

	if !cfg.Configured() {
		t.Error("expected configured")
	}
	if cfg.From != "Calorie Joy <mailgun@mg.example.com>" {
		t.Errorf("from = %q", cfg.From)
	}
	if cfg.BaseURL != "https://api.mailgun.net/v3" {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
}
