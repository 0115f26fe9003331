package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/appdotbuilder/simple-todo-app-a8eb/utils"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

var (
	mqttMU     sync.Mutex
	mqttClient mqtt.Client
	mqttTopic  string
)

func createClientOptions(clientId string, uri *url.URL) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", uri.Host))
	opts.SetClientID(clientId)
	return opts
}

func connect(clientId string, uri *url.URL) (mqtt.Client, error) {
	opts := createClientOptions(clientId, uri)
	client := mqtt.NewClient(opts)
	token := client.Connect()
	for !token.WaitTimeout(3 * time.Second) {
	}
	if err := token.Error(); err != nil {
		return nil, err
	}
	return client, nil
}

// InitMQTTPublisher connects to the broker named by MQTT_URL and publishes
// todo change events to the URL's topic path (default "todos"). Without
// MQTT_URL the publisher stays disabled; CRUD never depends on the broker.
func InitMQTTPublisher() {
	raw := os.Getenv("MQTT_URL")
	if raw == "" {
		return
	}

	uri, err := url.Parse(raw)
	if err != nil {
		log.Printf("MQTT_URL invalid, event publishing disabled: %v", err)
		return
	}

	topic := "todos"
	if len(uri.Path) > 1 {
		topic = uri.Path[1:]
	}

	suffix, err := utils.GenerateRandomID()
	if err != nil {
		log.Printf("MQTT client id: %v", err)
		return
	}

	client, err := connect("todo-pub-"+suffix[:8], uri)
	if err != nil {
		log.Printf("MQTT connect failed, event publishing disabled: %v", err)
		return
	}

	mqttMU.Lock()
	mqttClient = client
	mqttTopic = topic
	mqttMU.Unlock()

	log.Printf("MQTT publisher connected, topic %q", topic)
}

func publishMQTT(ev TodoEvent) {
	mqttMU.Lock()
	client, topic := mqttClient, mqttTopic
	mqttMU.Unlock()

	if client == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("marshal todo event: %v", err)
		return
	}

	go logPublishResult(client.Publish(topic, 0, false, payload))
}

// publishToken is the slice of mqtt.Token the result logger needs.
type publishToken interface {
	WaitTimeout(time.Duration) bool
	Error() error
}

func logPublishResult(token publishToken) {
	if !token.WaitTimeout(3 * time.Second) {
		log.Printf("MQTT publish timed out")
		return
	}
	if err := token.Error(); err != nil {
		log.Printf("MQTT publish: %v", err)
	}
}
