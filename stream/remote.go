package stream

import (
	"encoding/json"
	"log"
	"os"

	"github.com/eclipse/paho.mqtt.golang"
)

// Remote listens for control commands over MQTT and forwards them to a
// Controller.
type Remote struct {
	config     Config
	client     mqtt.Client
	controller *Controller
}

// NewRemote creates an instance of a Remote object.
func NewRemote(config Config, client mqtt.Client, controller *Controller) *Remote {
	r := new(Remote)
	r.config = config
	r.client = client
	r.controller = controller
	return r
}

func (r *Remote) handleMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())

	var cmd Command
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		log.Printf("bad control message: %v", err)
		return
	}

	r.controller.Apply(cmd)
}

// Subscribe registers for control messages. Call it from the MQTT
// on-connect handler so the subscription survives reconnects.
func (r *Remote) Subscribe() {
	if token := r.client.Subscribe(r.config.Mqtt.Topics.Control, 0, r.handleMessage); token.Wait() && token.Error() != nil {
		log.Println(token.Error())
		os.Exit(1)
	}
}
