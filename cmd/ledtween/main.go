package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"gopkg.in/yaml.v2"

	"github.com/riverreal/STween/api"
	"github.com/riverreal/STween/stream"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Controller *stream.Controller
	Streamer   *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	a.Streamer.Subscribe()
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}

	if a.Config.Stream.FrameRate <= 0 {
		a.Config.Stream.FrameRate = 30
	}
}

func (a *app) loadPlaylist() *stream.Playlist {
	path := a.Config.Stream.Playlist
	if path == "" {
		return stream.DefaultPlaylist()
	}

	p, err := stream.LoadPlaylist(path)
	if err != nil {
		log.Printf("Playlist %s unreadable (%v), using the default rotation", path, err)
		return stream.DefaultPlaylist()
	}

	return p
}

func (a *app) watchPlaylist() {
	path := a.Config.Stream.Playlist
	if path == "" {
		return
	}

	// The watcher stays open for the life of the process.
	if _, err := stream.WatchPlaylist(path, a.Controller.Reload); err != nil {
		log.Printf("Not watching %s: %v", path, err)
	}
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	rand.Seed(time.Now().UTC().UnixNano())

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("ledtween").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)

	a.Client = client
	a.Controller = stream.NewController(a.loadPlaylist(), a.Config.Stream.FrameRate)
	a.Streamer = stream.NewStreamer(a.Config, client, a.Controller)
	a.watchPlaylist()

	go api.NewApi(a.Config.Api.Addr, a.Controller.Status).Serve()

	a.run()
}
