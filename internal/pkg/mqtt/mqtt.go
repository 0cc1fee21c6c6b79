package mqtt

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
)

// MQTTClient defines the subset of the paho client used by the service
type MQTTClient interface {
	Connect() paho.Token
	Subscribe(topic string, qos byte, callback paho.MessageHandler) paho.Token
	Unsubscribe(topics ...string) paho.Token
	Disconnect(quiesce uint)
}

// MessageHandler processes the payload received on a concrete topic
type MessageHandler func(topic string, payload []byte)

// Service provides MQTT subscription for inbound device messages
type Service struct {
	client MQTTClient
	qos    byte
	topics []string
}

// NewService creates an MQTT service on top of an existing client
func NewService(client MQTTClient, qos byte) *Service {
	return &Service{client: client, qos: qos}
}

// Connect creates a paho client from configuration and connects to the broker
func Connect(config models.MQTTConfig) (*Service, error) {
	opts := paho.NewClientOptions()
	opts.AddBroker(config.Broker)
	opts.SetClientID(config.ClientID)
	if config.Username != "" {
		opts.SetUsername(config.Username)
		opts.SetPassword(config.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		logger.Warn("MQTT connection lost", logger.Err(err))
	})

	svc := NewService(paho.NewClient(opts), byte(config.QoS))

	token := svc.client.Connect()
	if token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to mqtt broker %s: %w", config.Broker, token.Error())
	}

	logger.Info("Connected to MQTT broker", logger.String("broker", config.Broker))
	return svc, nil
}

// Subscribe registers handler for topic, wildcards included
func (s *Service) Subscribe(topic string, handler MessageHandler) error {
	token := s.client.Subscribe(topic, s.qos, func(_ paho.Client, msg paho.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, token.Error())
	}

	s.topics = append(s.topics, topic)
	logger.Info("Subscribed to MQTT topic", logger.String("topic", topic))
	return nil
}

// Close unsubscribes from every topic and disconnects
func (s *Service) Close() {
	if len(s.topics) > 0 {
		token := s.client.Unsubscribe(s.topics...)
		if token.WaitTimeout(5*time.Second) && token.Error() != nil {
			logger.Warn("Failed to unsubscribe from MQTT topics", logger.Err(token.Error()))
		}
	}
	s.client.Disconnect(250)
}
