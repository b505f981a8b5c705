package geo

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestAgent_Locate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("accuracy"); got != "high" {
			t.Errorf("expected accuracy=high, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"lat":31.95,"lng":35.93,"accuracy":12.5}`))
	}))
	defer srv.Close()

	agent := NewAgent(srv.URL, time.Second, testLogger())
	fix := agent.Locate(context.Background())
	if fix == nil {
		t.Fatalf("expected a fix")
	}
	if fix.Lat != 31.95 || fix.Lng != 35.93 || fix.Accuracy != 12.5 {
		t.Fatalf("unexpected fix %+v", fix)
	}
}

func TestAgent_TimeoutYieldsNoFix(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	agent := NewAgent(srv.URL, 50*time.Millisecond, testLogger())

	start := time.Now()
	fix := agent.Locate(context.Background())
	if fix != nil {
		t.Fatalf("expected no fix, got %+v", fix)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("locate did not respect timeout, took %s", elapsed)
	}
}

func TestAgent_ErrorStatusYieldsNoFix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	agent := NewAgent(srv.URL, time.Second, testLogger())
	if fix := agent.Locate(context.Background()); fix != nil {
		t.Fatalf("expected no fix, got %+v", fix)
	}
}

func TestAgent_MalformedBodyYieldsNoFix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	agent := NewAgent(srv.URL, time.Second, testLogger())
	if fix := agent.Locate(context.Background()); fix != nil {
		t.Fatalf("expected no fix, got %+v", fix)
	}
}

func TestAgent_UnreachableYieldsNoFix(t *testing.T) {
	agent := NewAgent("http://127.0.0.1:1", 200*time.Millisecond, testLogger())
	if fix := agent.Locate(context.Background()); fix != nil {
		t.Fatalf("expected no fix, got %+v", fix)
	}
}

func TestNoLocation(t *testing.T) {
	if fix := (NoLocation{}).Locate(context.Background()); fix != nil {
		t.Fatalf("expected no fix, got %+v", fix)
	}
}
