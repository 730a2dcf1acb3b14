package stream

import (
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	config     Config
	client     mqtt.Client
	controller *Controller
	remote     *Remote
	start      time.Time
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, controller *Controller) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.controller = controller
	s.remote = NewRemote(config, client, controller)

	return s
}

// Subscribe registers the MQTT subscriptions.
func (s *Streamer) Subscribe() {
	s.remote.Subscribe()
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(runtimeMs int64) {
	f := s.controller.CalculateFrame(runtimeMs)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Run causes the Streamer to send Frames continuously at the configured
// frame rate.
func (s *Streamer) Run() {
	frameRate := s.config.Stream.FrameRate
	if frameRate <= 0 {
		frameRate = 30
	}

	s.start = time.Now()
	publishTimer := time.NewTicker(time.Duration(float64(time.Second) / frameRate))
	for {
		<-publishTimer.C
		s.SendFrame(time.Since(s.start).Milliseconds())
	}
}
