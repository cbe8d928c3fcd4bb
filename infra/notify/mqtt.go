package notify

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/zecke/rostergen/core/model"
	"github.com/zecke/rostergen/infra/logger"
)

// Config defines the connection parameters for the roster notifier. An empty
// broker disables notification entirely.
type Config struct {
	Broker         string `json:"broker"`
	ClientID       string `json:"client_id"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	Topic          string `json:"topic"`
	QoS            byte   `json:"qos"`
	Retain         bool   `json:"retain"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// SetDefaults applies topic and timeout defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "rostergen"
	}
	if c.Topic == "" {
		c.Topic = "oncall/roster"
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 5
	}
}

// pahoClient is the subset of the Paho client used by the notifier.
type pahoClient interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// MQTTNotifier publishes accepted rosters as JSON to an MQTT topic so pager
// bridges and chat bots can pick them up.
type MQTTNotifier struct {
	cli     pahoClient
	topic   string
	qos     byte
	retain  bool
	timeout time.Duration
	log     logger.Logger
}

// NewMQTTNotifier connects to the broker and returns a ready notifier.
func NewMQTTNotifier(cfg Config) (*MQTTNotifier, error) {
	cfg.SetDefaults()
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password)

	n := &MQTTNotifier{
		cli:     newMQTTClient(opts),
		topic:   cfg.Topic,
		qos:     cfg.QoS,
		retain:  cfg.Retain,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		log:     logger.New("mqtt-notifier"),
	}
	token := n.cli.Connect()
	if !token.WaitTimeout(n.timeout) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return n, nil
}

// PublishSchedule sends the roster to the configured topic.
func (n *MQTTNotifier) PublishSchedule(sched *model.Schedule) error {
	payload, err := json.Marshal(sched)
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}
	token := n.cli.Publish(n.topic, n.qos, n.retain, payload)
	if !token.WaitTimeout(n.timeout) {
		return fmt.Errorf("mqtt publish to %s timed out", n.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish: %w", err)
	}
	n.log.Infof("roster %s published to %s", sched.RunID, n.topic)
	return nil
}

// Close disconnects from the broker.
func (n *MQTTNotifier) Close() {
	n.cli.Disconnect(250)
}
