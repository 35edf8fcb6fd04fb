package record

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/phanxgames/sprig"
)

// ErrPublishTimeout is returned when the broker does not acknowledge a frame
// in time.
var ErrPublishTimeout = errors.New("mqtt publish timed out")

// MQTTConfig configures an MQTT frame mirror.
type MQTTConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"clientId"`
	// Topic receives one PNG payload per published frame.
	Topic string `yaml:"topic"`
	QoS   byte   `yaml:"qos"`
	// Every publishes only every n-th frame. Defaults to 1.
	Every int `yaml:"every"`
	// Timeout bounds each publish. Defaults to 5s.
	Timeout time.Duration `yaml:"timeout"`
}

// Publisher is the part of mqtt.Client the sink needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTSink publishes frames as PNG images to a topic, for live previews on
// another machine.
type MQTTSink struct {
	pub       Publisher
	cfg       MQTTConfig
	published int
	buf       bytes.Buffer
}

var _ sprig.Sink = (*MQTTSink)(nil)

// DialMQTT connects to the broker described by cfg.
func DialMQTT(cfg MQTTConfig) (mqtt.Client, error) {
	if cfg.ClientID == "" {
		cfg.ClientID = "sprig"
	}
	options := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	client := mqtt.NewClient(options)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect %s: %w", cfg.URL, ErrPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect %s: %w", cfg.URL, err)
	}
	return client, nil
}

// NewMQTTSink returns a sink publishing through pub.
func NewMQTTSink(pub Publisher, cfg MQTTConfig) *MQTTSink {
	if cfg.Topic == "" {
		cfg.Topic = "sprig/frames"
	}
	if cfg.Every <= 0 {
		cfg.Every = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &MQTTSink{pub: pub, cfg: cfg}
}

// Published returns how many frames went out.
func (s *MQTTSink) Published() int {
	return s.published
}

// SaveFrame implements sprig.Sink.
func (s *MQTTSink) SaveFrame(img image.Image, id int) error {
	if id%s.cfg.Every != 0 {
		return nil
	}
	s.buf.Reset()
	if err := png.Encode(&s.buf, img); err != nil {
		return fmt.Errorf("encode frame %d: %w", id, err)
	}
	payload := append([]byte(nil), s.buf.Bytes()...)
	token := s.pub.Publish(s.cfg.Topic, s.cfg.QoS, false, payload)
	if !token.WaitTimeout(s.cfg.Timeout) {
		return fmt.Errorf("frame %d: %w", id, ErrPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish frame %d: %w", id, err)
	}
	s.published++
	return nil
}

// Tee fans every frame out to several sinks in order, stopping at the first
// error.
type Tee []sprig.Sink

// SaveFrame implements sprig.Sink.
func (t Tee) SaveFrame(img image.Image, id int) error {
	for _, s := range t {
		if err := s.SaveFrame(img, id); err != nil {
			return err
		}
	}
	return nil
}
