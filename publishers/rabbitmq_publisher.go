package publishers

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/streadway/amqp"
)

// Acciones que se publican sobre una propiedad
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// PropertyMessage representa un mensaje sobre una propiedad
// El formato tiene que coincidir con el que espera el consumidor
// de la search-api
type PropertyMessage struct {
	Action     string `json:"action"` // "create", "update", "delete"
	PropertyID string `json:"property_id"`
}

// EventPublisher define la interfaz para publicar eventos de propiedades
type EventPublisher interface {
	PublishPropertyEvent(action string, propertyID uint) error
	Close() error
}

// RabbitMQPublisher publica mensajes en RabbitMQ para que el índice
// de búsqueda se mantenga sincronizado
type RabbitMQPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

// NewRabbitMQPublisher crea una nueva instancia de RabbitMQPublisher
func NewRabbitMQPublisher(rabbitURL, queueName string) (*RabbitMQPublisher, error) {
	log.Printf("Connecting to RabbitMQ at %s", rabbitURL)

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if queueName == "" {
		queueName = "properties_queue"
	}

	// La queue se declara durable, igual que del lado del consumidor
	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	log.Printf("Queue '%s' declared successfully", queueName)

	return &RabbitMQPublisher{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
	}, nil
}

// PublishPropertyEvent publica un mensaje con la acción y el id de la propiedad
func (p *RabbitMQPublisher) PublishPropertyEvent(action string, propertyID uint) error {
	msg := PropertyMessage{
		Action:     action,
		PropertyID: strconv.FormatUint(uint64(propertyID), 10),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal property message: %w", err)
	}

	err = p.channel.Publish(
		"",          // exchange (default)
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Printf("Published property event: action=%s, property_id=%s", msg.Action, msg.PropertyID)
	return nil
}

// Close cierra el channel y la conexión
func (p *RabbitMQPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return err
		}
	}
	if p.connection != nil {
		return p.connection.Close()
	}
	return nil
}
