package stream

import (
	"log"
	"math"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	stween "github.com/riverreal/STween"
)

// Command asks the controller to change what it is showing. Type is
// "next" to advance the playlist or "play" to jump to a named animation.
type Command struct {
	Type      string `json:"type"`
	Animation string `json:"animation"`
}

// Status is a snapshot of what the controller is doing, served by the api
// package.
type Status struct {
	Animation     string  `json:"animation"`
	Transitioning bool    `json:"transitioning"`
	ActiveTweens  int     `json:"activeTweens"`
	FrameRate     float64 `json:"frameRate"`
}

// Controller that manages animations, crossfading between them by tweening
// a transition factor.
type Controller struct {
	playlist   *Playlist
	frameRate  float64
	animations map[string]Animation

	animation     Animation
	nextAnimation Animation
	entryIndex    int
	holdRemaining float64

	transition  float64
	transitions *stween.STween[float64]

	commands chan Command
	reloads  chan *Playlist

	lastMs int64

	mu      sync.Mutex
	current Status
}

// NewController creates an instance of a Controller.
func NewController(playlist *Playlist, frameRate float64) *Controller {
	playlist.applyDefaults()

	c := new(Controller)
	c.playlist = playlist
	c.frameRate = frameRate
	c.animations = builtinAnimations()
	c.transitions = stween.New[float64]()
	c.commands = make(chan Command, 4)
	c.reloads = make(chan *Playlist, 1)
	c.lastMs = -1

	c.entryIndex = 0
	c.animation = c.entryAnimation(0)
	c.holdRemaining = playlist.Entries[0].HoldSeconds

	return c
}

func builtinAnimations() map[string]Animation {
	gradient := rainbow()
	backColour, _ := colorful.Hex("#000005")
	pulseColour, _ := colorful.Hex("#4060c0")

	animations := []Animation{
		NewPulse(pulseColour, 6.0),
		NewTrail(gradient, 180, 2.0),
		NewChaser(gradient, 45, backColour),
		NewStripes(nil, 120.0),
	}

	m := make(map[string]Animation, len(animations))
	for _, a := range animations {
		m[a.Name()] = a
	}
	return m
}

// entryAnimation resolves the playlist entry at index, falling back to the
// current animation when the entry names something unknown.
func (c *Controller) entryAnimation(index int) Animation {
	name := c.playlist.Entries[index].Animation
	a, ok := c.animations[name]
	if !ok {
		log.Printf("playlist names unknown animation %q", name)
		if c.animation != nil {
			return c.animation
		}
		return c.animations["pulse"]
	}
	return a
}

// Apply queues a remote command for the next frame boundary.
func (c *Controller) Apply(cmd Command) {
	select {
	case c.commands <- cmd:
	default:
		log.Printf("dropping command %+v: queue full", cmd)
	}
}

// Reload queues a playlist swap for the next frame boundary.
func (c *Controller) Reload(p *Playlist) {
	select {
	case <-c.reloads:
	default:
	}
	c.reloads <- p
}

// Status returns the most recent status snapshot. Safe to call from the
// api goroutine.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// CalculateFrame renders the next frame, advancing holds and transitions.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	dt := deltaSeconds(c.lastMs, runtimeMs)
	c.lastMs = runtimeMs

	c.drain()

	if c.nextAnimation == nil {
		c.holdRemaining -= dt
		if c.holdRemaining <= 0 && len(c.playlist.Entries) > 1 {
			c.advancePlaylist()
		}
	}

	c.transitions.Update(dt)

	var f *Frame
	if c.nextAnimation != nil {
		f = c.animation.CalculateFrame(runtimeMs).
			InterpolateFrame(c.nextAnimation.CalculateFrame(runtimeMs), c.transition)
	} else {
		f = c.animation.CalculateFrame(runtimeMs)
	}

	c.publishStatus()

	return f
}

// drain consumes queued commands and playlist reloads without blocking.
func (c *Controller) drain() {
	for {
		select {
		case cmd := <-c.commands:
			c.handleCommand(cmd)
		case p := <-c.reloads:
			c.playlist = p
			c.entryIndex = 0
			c.startFade(c.entryAnimation(0), p.Entries[0].HoldSeconds)
		default:
			return
		}
	}
}

func (c *Controller) handleCommand(cmd Command) {
	switch cmd.Type {
	case "next":
		c.advancePlaylist()
	case "play":
		a, ok := c.animations[cmd.Animation]
		if !ok {
			log.Printf("unknown animation %q", cmd.Animation)
			return
		}
		// Hold until the next command; the playlist resumes on "next".
		c.startFade(a, math.MaxFloat64)
	default:
		log.Printf("unknown command type %q", cmd.Type)
	}
}

// advancePlaylist crossfades to the next playlist entry.
func (c *Controller) advancePlaylist() {
	if len(c.playlist.Entries) == 0 {
		return
	}
	c.entryIndex = (c.entryIndex + 1) % len(c.playlist.Entries)
	c.startFade(c.entryAnimation(c.entryIndex), c.playlist.Entries[c.entryIndex].HoldSeconds)
}

// startFade tweens the transition factor from 0 to 1 and swaps the
// animations over when it completes.
func (c *Controller) startFade(next Animation, holdAfter float64) {
	if next == c.animation {
		c.holdRemaining = holdAfter
		return
	}
	if c.nextAnimation != nil {
		log.Printf("transition already running, ignoring fade to %s", next.Name())
		return
	}

	c.nextAnimation = next
	c.transition = 0
	c.transitions.From(&c.transition).
		To(1.0).
		Time(c.playlist.TransitionSeconds).
		Easing(c.playlist.Easing()).
		OnFinish(func() {
			c.animation = c.nextAnimation
			c.nextAnimation = nil
			c.transition = 0
			c.holdRemaining = holdAfter
		})
}

func (c *Controller) publishStatus() {
	active := c.transitions.Len()
	for _, a := range c.animations {
		if tc, ok := a.(tweenCounter); ok {
			active += tc.ActiveTweens()
		}
	}

	c.mu.Lock()
	c.current = Status{
		Animation:     c.animation.Name(),
		Transitioning: c.nextAnimation != nil,
		ActiveTweens:  active,
		FrameRate:     c.frameRate,
	}
	c.mu.Unlock()
}
