// Package bridge decodes uplinks received over MQTT and republishes the
// results.
//
// An uplink is a message on the configured uplink topic whose body is the hex
// payload. Results go to <result_prefix>/<type>; rejected payloads go to
// <result_prefix>/error as {"error": ..., "payload": ...}.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/christiaansc/Codec-BoBAssistant/internal/config"
	"github.com/christiaansc/Codec-BoBAssistant/internal/decoder"
	"github.com/christiaansc/Codec-BoBAssistant/internal/dedup"
)

// ErrorTopic is the suffix under the result prefix for rejected payloads.
const ErrorTopic = "error"

type errorBody struct {
	Error   string `json:"error"`
	Payload string `json:"payload"`
}

type Bridge struct {
	cfg        config.MQTTConfig
	log        logrus.FieldLogger
	decoder    *decoder.Decoder
	dedup      *dedup.Deduper
	publishers []Publisher
}

// New builds a bridge. dd may be nil to process every delivery.
func New(cfg config.MQTTConfig, log logrus.FieldLogger, dec *decoder.Decoder, dd *dedup.Deduper, publishers ...Publisher) *Bridge {
	return &Bridge{
		cfg:        cfg,
		log:        log.WithField("component", "bridge"),
		decoder:    dec,
		dedup:      dd,
		publishers: publishers,
	}
}

// Handle decodes one uplink and publishes the outcome. A decode failure is
// published, not returned; the error reports publishing problems only.
func (b *Bridge) Handle(ctx context.Context, topic string, payload []byte) error {
	log := b.log.WithField("topic", topic)
	if b.dedup != nil && !b.dedup.ShouldProcess(dedup.Key(topic, payload)) {
		log.Debug("duplicate uplink dropped")
		return nil
	}

	raw := strings.TrimSpace(string(payload))
	var (
		out  string
		body []byte
		err  error
	)
	res, decodeErr := b.decoder.Decode(raw, log.WithField("payload", raw))
	if decodeErr != nil {
		out = b.cfg.ResultPrefix + "/" + ErrorTopic
		body, err = json.Marshal(errorBody{Error: decodeErr.Error(), Payload: raw})
	} else {
		out = b.cfg.ResultPrefix + "/" + res.Type
		body, err = json.Marshal(res)
	}
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	var errs []error
	for _, p := range b.publishers {
		if err := p.Publish(ctx, out, body); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// MessageHandler adapts Handle to a paho subscription callback.
func (b *Bridge) MessageHandler(ctx context.Context) mqtt.MessageHandler {
	return func(_ mqtt.Client, m mqtt.Message) {
		if err := b.Handle(ctx, m.Topic(), m.Payload()); err != nil {
			b.log.WithError(err).WithField("topic", m.Topic()).Error("forwarding result failed")
		}
	}
}

// Run subscribes the uplink topic and blocks until ctx is done.
func (b *Bridge) Run(ctx context.Context, client mqtt.Client) error {
	token := client.Subscribe(b.cfg.UplinkTopic, b.cfg.QoS, b.MessageHandler(ctx))
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", b.cfg.UplinkTopic, token.Error())
	}
	b.log.WithField("topic", b.cfg.UplinkTopic).Info("subscribed")

	<-ctx.Done()
	if token := client.Unsubscribe(b.cfg.UplinkTopic); token.WaitTimeout(time.Second) && token.Error() != nil {
		b.log.WithError(token.Error()).Warn("unsubscribe failed")
	}
	return nil
}

// Connect dials the broker, retrying with exponential backoff.
func Connect(ctx context.Context, cfg config.MQTTConfig, log logrus.FieldLogger) (mqtt.Client, error) {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "bob-bridge-" + uuid.NewString()
	}
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(clientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(cfg.ConnectTimeout)
	opts.SetAutoReconnect(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.WithError(err).Warn("mqtt connection lost")
	})

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 10 * cfg.ConnectTimeout
	retries := cfg.MaxRetries
	if retries < 1 {
		retries = 1
	}

	var client mqtt.Client
	err := backoff.Retry(func() error {
		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			log.WithError(token.Error()).WithField("broker", cfg.Broker).Warn("mqtt connect failed")
			return token.Error()
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(retries-1)), ctx))
	if err != nil {
		return nil, fmt.Errorf("connect mqtt broker %s: %w", cfg.Broker, err)
	}
	log.WithFields(logrus.Fields{"broker": cfg.Broker, "client_id": clientID}).Info("mqtt connected")
	return client, nil
}

// Disconnect closes client if still connected.
func Disconnect(client mqtt.Client) {
	if client != nil && client.IsConnected() {
		client.Disconnect(250)
	}
}
