package stream

import (
	"os"
	"path/filepath"
	"testing"

	stween "github.com/riverreal/STween"
)

func TestLoadPlaylist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlist.yaml")
	doc := `transitionSeconds: 2.5
transitionEasing: quadOut
entries:
  - animation: trail
    holdSeconds: 10
  - animation: chaser
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadPlaylist(path)
	if err != nil {
		t.Fatalf("LoadPlaylist: %v", err)
	}
	if p.TransitionSeconds != 2.5 {
		t.Errorf("TransitionSeconds = %v, want 2.5", p.TransitionSeconds)
	}
	if p.Easing() != stween.QuadOut {
		t.Errorf("Easing() = %v, want quadOut", p.Easing())
	}
	if len(p.Entries) != 2 {
		t.Fatalf("Entries = %d, want 2", len(p.Entries))
	}
	if p.Entries[0].Animation != "trail" || p.Entries[0].HoldSeconds != 10 {
		t.Errorf("first entry = %+v", p.Entries[0])
	}
	// The second entry omits holdSeconds, so the default applies.
	if p.Entries[1].HoldSeconds != 30 {
		t.Errorf("defaulted hold = %v, want 30", p.Entries[1].HoldSeconds)
	}
}

func TestLoadPlaylistMissingFile(t *testing.T) {
	if _, err := LoadPlaylist(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing playlist file")
	}
}

func TestPlaylistDefaults(t *testing.T) {
	p := new(Playlist)
	p.applyDefaults()

	if p.TransitionSeconds != 5.0 {
		t.Errorf("TransitionSeconds = %v, want 5.0", p.TransitionSeconds)
	}
	if len(p.Entries) != len(DefaultPlaylist().Entries) {
		t.Errorf("empty playlist should fall back to the default rotation")
	}
	if p.Easing() != stween.Linear {
		t.Errorf("unset easing should parse as linear")
	}
}
