package stream

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v2"

	stween "github.com/riverreal/STween"
)

// PlaylistEntry names an animation and how long the controller holds it
// before crossfading to the next one.
type PlaylistEntry struct {
	Animation   string  `yaml:"animation"`
	HoldSeconds float64 `yaml:"holdSeconds"`
}

// Playlist drives the controller's animation rotation.
type Playlist struct {
	TransitionSeconds float64         `yaml:"transitionSeconds"`
	TransitionEasing  string          `yaml:"transitionEasing"`
	Entries           []PlaylistEntry `yaml:"entries"`
}

// DefaultPlaylist rotates the built-in animations with a gentle crossfade.
func DefaultPlaylist() *Playlist {
	p := new(Playlist)
	p.TransitionSeconds = 5.0
	p.TransitionEasing = "cubicInOut"
	p.Entries = []PlaylistEntry{
		{Animation: "pulse", HoldSeconds: 30},
		{Animation: "trail", HoldSeconds: 30},
		{Animation: "chaser", HoldSeconds: 30},
		{Animation: "stripes", HoldSeconds: 30},
	}
	return p
}

// LoadPlaylist reads a playlist from a YAML file.
func LoadPlaylist(path string) (*Playlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := new(Playlist)
	if err := yaml.NewDecoder(f).Decode(p); err != nil {
		return nil, err
	}
	p.applyDefaults()

	return p, nil
}

func (p *Playlist) applyDefaults() {
	if p.TransitionSeconds <= 0 {
		p.TransitionSeconds = 5.0
	}
	if len(p.Entries) == 0 {
		p.Entries = DefaultPlaylist().Entries
	}
	for i := range p.Entries {
		if p.Entries[i].HoldSeconds <= 0 {
			p.Entries[i].HoldSeconds = 30
		}
	}
}

// Easing resolves the configured transition curve; unknown names fall
// back to linear.
func (p *Playlist) Easing() stween.Easing {
	return stween.ParseEasing(p.TransitionEasing)
}

// WatchPlaylist reloads the playlist whenever the file changes and hands
// the result to onReload. Events are debounced because editors fire
// several for a single save. Close the returned watcher to stop.
func WatchPlaylist(path string, onReload func(*Playlist)) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}

	go func() {
		var last time.Time
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filepath.Base(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if time.Since(last) < 100*time.Millisecond {
					continue
				}
				last = time.Now()

				p, err := LoadPlaylist(path)
				if err != nil {
					log.Printf("playlist reload failed: %v", err)
					continue
				}
				log.Printf("playlist reloaded from %s", path)
				onReload(p)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("playlist watch error: %v", err)
			}
		}
	}()

	return w, nil
}
