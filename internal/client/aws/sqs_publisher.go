package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"
)

type sqsAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// EventPublisher sends JSON events to a single SQS queue.
type EventPublisher struct {
	svc      sqsAPI
	queueURL string
}

func NewEventPublisher(ctx context.Context, queueURL string) (*EventPublisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &EventPublisher{svc: sqs.NewFromConfig(cfg), queueURL: queueURL}, nil
}

// Publish marshals payload and sends it with an event_type message attribute.
func (p *EventPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	out, err := p.svc.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(eventType),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send %s event: %w", eventType, err)
	}

	logger.Log.Debug("Published event",
		zap.String("event_type", eventType),
		zap.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}
