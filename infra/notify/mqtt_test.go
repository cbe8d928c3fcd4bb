package notify

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/zecke/rostergen/core/model"
)

type fakeToken struct {
	err      error
	timedOut bool
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return !t.timedOut }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type fakeClient struct {
	connectToken *fakeToken
	publishToken *fakeToken

	published    []string
	topics       []string
	disconnected bool
}

func (c *fakeClient) Connect() paho.Token { return c.connectToken }

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	c.topics = append(c.topics, topic)
	c.published = append(c.published, string(payload.([]byte)))
	return c.publishToken
}

func swapClient(t *testing.T, c *fakeClient) {
	t.Helper()
	orig := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) pahoClient { return c }
	t.Cleanup(func() { newMQTTClient = orig })
}

func TestPublishScheduleSendsRosterJSON(t *testing.T) {
	cli := &fakeClient{connectToken: &fakeToken{}, publishToken: &fakeToken{}}
	swapClient(t, cli)

	n, err := NewMQTTNotifier(Config{Broker: "tcp://broker:1883"})
	if err != nil {
		t.Fatalf("NewMQTTNotifier: %v", err)
	}

	sched := &model.Schedule{
		RunID:  "r1",
		Status: "optimal",
		Assignments: []model.Assignment{
			{Period: 1, Role: model.RolePrimary, Person: "me"},
		},
	}
	if err := n.PublishSchedule(sched); err != nil {
		t.Fatalf("PublishSchedule: %v", err)
	}

	if len(cli.topics) != 1 || cli.topics[0] != "oncall/roster" {
		t.Fatalf("published to %v, want the default topic", cli.topics)
	}
	var got model.Schedule
	if err := json.Unmarshal([]byte(cli.published[0]), &got); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if got.RunID != "r1" || got.PersonFor(1, model.RolePrimary) != "me" {
		t.Fatalf("payload lost roster data: %+v", got)
	}

	n.Close()
	if !cli.disconnected {
		t.Fatalf("Close must disconnect the client")
	}
}

func TestNewMQTTNotifierConnectFailures(t *testing.T) {
	cli := &fakeClient{connectToken: &fakeToken{timedOut: true}}
	swapClient(t, cli)
	if _, err := NewMQTTNotifier(Config{Broker: "tcp://broker:1883"}); err == nil ||
		!strings.Contains(err.Error(), "timed out") {
		t.Fatalf("expected timeout error, got %v", err)
	}

	boom := errors.New("bad credentials")
	cli = &fakeClient{connectToken: &fakeToken{err: boom}}
	swapClient(t, cli)
	if _, err := NewMQTTNotifier(Config{Broker: "tcp://broker:1883"}); !errors.Is(err, boom) {
		t.Fatalf("connect error not propagated: %v", err)
	}
}

func TestPublishScheduleReportsBrokerErrors(t *testing.T) {
	boom := errors.New("not authorized")
	cli := &fakeClient{connectToken: &fakeToken{}, publishToken: &fakeToken{err: boom}}
	swapClient(t, cli)

	n, err := NewMQTTNotifier(Config{Broker: "tcp://broker:1883"})
	if err != nil {
		t.Fatalf("NewMQTTNotifier: %v", err)
	}
	if err := n.PublishSchedule(&model.Schedule{RunID: "r1"}); !errors.Is(err, boom) {
		t.Fatalf("publish error not propagated: %v", err)
	}

	cli.publishToken = &fakeToken{timedOut: true}
	if err := n.PublishSchedule(&model.Schedule{RunID: "r2"}); err == nil ||
		!strings.Contains(err.Error(), "timed out") {
		t.Fatalf("expected timeout error, got %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	if cfg.ClientID != "rostergen" || cfg.Topic != "oncall/roster" || cfg.TimeoutSeconds != 5 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
