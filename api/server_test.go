package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riverreal/STween/stream"
)

func TestStatusEndpoint(t *testing.T) {
	a := NewApi("", func() stream.Status {
		return stream.Status{
			Animation:     "pulse",
			Transitioning: true,
			ActiveTweens:  3,
			FrameRate:     30,
		}
	})

	srv := httptest.NewServer(a.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status code = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	var got stream.Status
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Animation != "pulse" || !got.Transitioning || got.ActiveTweens != 3 || got.FrameRate != 30 {
		t.Fatalf("decoded status = %+v", got)
	}
}

func TestStatusRejectsPost(t *testing.T) {
	a := NewApi("", func() stream.Status { return stream.Status{} })

	srv := httptest.NewServer(a.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/status", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status code = %d, want 405", resp.StatusCode)
	}
}
