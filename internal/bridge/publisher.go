package bridge

import (
	"context"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/christiaansc/Codec-BoBAssistant/internal/config"
)

// Publisher forwards one decoded message.
type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

// MQTTPublisher publishes on the broker the uplinks came from.
type MQTTPublisher struct {
	client  mqtt.Client
	qos     byte
	timeout time.Duration
}

func NewMQTTPublisher(client mqtt.Client, qos byte, timeout time.Duration) *MQTTPublisher {
	return &MQTTPublisher{client: client, qos: qos, timeout: timeout}
}

func (p *MQTTPublisher) Publish(_ context.Context, topic string, body []byte) error {
	token := p.client.Publish(topic, p.qos, false, body)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("publish to %s: timed out after %s", topic, p.timeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

// RecentLength bounds the per-topic list kept by RedisPublisher.
const RecentLength = 1000

// RedisPublisher fans results out on a redis pub/sub channel and keeps the
// most recent ones per topic in a list.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	log     logrus.FieldLogger
}

func NewRedisPublisher(cfg config.RedisConfig, log logrus.FieldLogger) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	return &RedisPublisher{client: client, channel: cfg.Channel, log: log.WithField("component", "redis")}
}

// Ping checks the connection.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	return nil
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, body []byte) error {
	if err := p.client.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("publish to redis channel %s: %w", p.channel, err)
	}
	key := RecentKey(topic)
	pipe := p.client.Pipeline()
	pipe.LPush(ctx, key, body)
	pipe.LTrim(ctx, key, 0, RecentLength-1)
	if _, err := pipe.Exec(ctx); err != nil {
		p.log.WithError(err).WithField("key", key).Warn("keeping recent result failed")
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// RecentKey is the list holding the latest results published on topic.
func RecentKey(topic string) string {
	return "bob:" + topic + ":recent"
}
