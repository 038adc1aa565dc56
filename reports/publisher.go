package reports

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/config"
	"bikeshare/domain/business/statsreport"
)

const (
	publisherType   = "report-publisher"
	contentTypeJson = "application/json"
)

// Publisher sends finished reports outside the explorer
type Publisher interface {
	Publish(ctx context.Context, report *statsreport.StatsReport) error
	Close() error
}

// QueuePublisher publishes raw messages in a named queue. Implemented by communication.RabbitMQ
type QueuePublisher interface {
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
	Close() error
}

// NewPublisher returns a NopPublisher when publishing is disabled. Otherwise it connects to
// RabbitMQ and declares the output queue.
func NewPublisher(publisherConfig config.PublisherConfig) (Publisher, error) {
	if !publisherConfig.Enabled {
		return NopPublisher{}, nil
	}

	rabbitMQ, err := communication.NewRabbitMQ(publisherConfig.URL)
	if err != nil {
		return nil, err
	}

	err = rabbitMQ.DeclareNonAnonymousQueues([]communication.QueueDeclarationConfig{publisherConfig.Queue})
	if err != nil {
		_ = rabbitMQ.Close()
		return nil, err
	}

	log.Infof("[component: %s][status: OK] publishing reports in queue %s", publisherType, publisherConfig.Queue.Name)
	return NewRabbitPublisher(rabbitMQ, publisherConfig.Queue.Name), nil
}

// RabbitPublisher publishes each report as JSON in a queue
type RabbitPublisher struct {
	queuePublisher QueuePublisher
	queueName      string
}

func NewRabbitPublisher(queuePublisher QueuePublisher, queueName string) *RabbitPublisher {
	return &RabbitPublisher{
		queuePublisher: queuePublisher,
		queueName:      queueName,
	}
}

func (rp *RabbitPublisher) Publish(ctx context.Context, report *statsreport.StatsReport) error {
	reportBytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error marshalling report: %w", err)
	}

	err = rp.queuePublisher.PublishMessageInQueue(ctx, rp.queueName, reportBytes, contentTypeJson)
	if err != nil {
		return fmt.Errorf("error publishing report in queue %s: %w", rp.queueName, err)
	}

	metadata := report.GetMetadata()
	log.Debugf("[component: %s][method: Publish][status: OK] %s of %s (%s) built by %s published in %s",
		publisherType, metadata.GetType(), metadata.GetCity(), metadata.GetMessage(), metadata.GetStage(), rp.queueName)
	return nil
}

func (rp *RabbitPublisher) Close() error {
	return rp.queuePublisher.Close()
}

// NopPublisher discards every report
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *statsreport.StatsReport) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
