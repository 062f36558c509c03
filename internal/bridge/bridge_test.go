package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/christiaansc/Codec-BoBAssistant/internal/config"
	"github.com/christiaansc/Codec-BoBAssistant/internal/decoder"
	"github.com/christiaansc/Codec-BoBAssistant/internal/dedup"
)

type published struct {
	topic string
	body  []byte
}

type fakePublisher struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, topic string, body []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, published{topic: topic, body: body})
	return f.err
}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

type fakeToken struct{ err error }

func (t fakeToken) Wait() bool                     { return true }
func (t fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t fakeToken) Error() error { return t.err }

// fakeClient overrides the calls the bridge makes; anything else panics on
// the nil embedded client.
type fakeClient struct {
	mqtt.Client
	mu         sync.Mutex
	handler    mqtt.MessageHandler
	subscribed string
	published  []published
}

func (c *fakeClient) Subscribe(topic string, _ byte, cb mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribed, c.handler = topic, cb
	return fakeToken{}
}

func (c *fakeClient) Unsubscribe(...string) mqtt.Token { return fakeToken{} }

func (c *fakeClient) Publish(topic string, _ byte, _ bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published = append(c.published, published{topic: topic, body: payload.([]byte)})
	return fakeToken{}
}

func (c *fakeClient) deliver(m mqtt.Message) {
	c.mu.Lock()
	h := c.handler
	c.mu.Unlock()
	h(c, m)
}

func newBridge(t *testing.T, pubs ...Publisher) *Bridge {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	return New(config.Default().MQTT, log, decoder.New(nil), dedup.New(time.Minute, 100), pubs...)
}

func TestHandlePublishesResult(t *testing.T) {
	pub := &fakePublisher{}
	b := newBridge(t, pub)

	require.NoError(t, b.Handle(context.Background(), "bob/1/uplink", []byte(" 537e40\n")))
	require.Len(t, pub.sent, 1)
	assert.Equal(t, "bob/decoded/startstop", pub.sent[0].topic)

	var res map[string]any
	require.NoError(t, json.Unmarshal(pub.sent[0].body, &res))
	assert.Equal(t, "MPU6500", res["sensor"])
	assert.Equal(t, "MACHINE_START", res["msg"].(map[string]any)["state"])
}

func TestHandlePublishesError(t *testing.T) {
	pub := &fakePublisher{}
	b := newBridge(t, pub)

	require.NoError(t, b.Handle(context.Background(), "bob/1/uplink", []byte("ff00")))
	require.Len(t, pub.sent, 1)
	assert.Equal(t, "bob/decoded/error", pub.sent[0].topic)

	var body errorBody
	require.NoError(t, json.Unmarshal(pub.sent[0].body, &body))
	assert.Equal(t, "ff00", body.Payload)
	assert.Contains(t, body.Error, "invalid data signification 255")
}

func TestHandleDropsDuplicates(t *testing.T) {
	pub := &fakePublisher{}
	b := newBridge(t, pub)

	ctx := context.Background()
	require.NoError(t, b.Handle(ctx, "bob/1/uplink", []byte("537e40")))
	require.NoError(t, b.Handle(ctx, "bob/1/uplink", []byte("537e40")))
	require.NoError(t, b.Handle(ctx, "bob/2/uplink", []byte("537e40")))
	assert.Len(t, pub.sent, 2)
}

func TestHandleJoinsPublishErrors(t *testing.T) {
	failing := &fakePublisher{err: errors.New("broker gone")}
	ok := &fakePublisher{}
	b := newBridge(t, failing, ok)

	err := b.Handle(context.Background(), "bob/1/uplink", []byte("537e40"))
	require.ErrorContains(t, err, "broker gone")
	assert.Len(t, ok.sent, 1)
}

func TestRunSubscribesAndForwards(t *testing.T) {
	client := &fakeClient{}
	b := newBridge(t, NewMQTTPublisher(client, 1, time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx, client) }()

	require.Eventually(t, func() bool {
		client.mu.Lock()
		defer client.mu.Unlock()
		return client.handler != nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "bob/+/uplink", client.subscribed)

	client.deliver(fakeMessage{topic: "bob/7/uplink", payload: []byte("736a00")})
	cancel()
	require.NoError(t, <-done)

	client.mu.Lock()
	defer client.mu.Unlock()
	require.Len(t, client.published, 1)
	assert.Equal(t, "bob/decoded/startstop", client.published[0].topic)
}

func TestRedisPublisherReportsUnreachableServer(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	cfg := config.Default().Redis
	cfg.Addr = "127.0.0.1:1"
	p := NewRedisPublisher(cfg, log)
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.Error(t, p.Ping(ctx))
	require.Error(t, p.Publish(ctx, "bob/decoded/report", []byte("{}")))
}

func TestRecentKey(t *testing.T) {
	assert.Equal(t, "bob:bob/decoded/report:recent", RecentKey("bob/decoded/report"))
}
