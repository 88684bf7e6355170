package repository

import (
	"context"
	"errors"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWebhookEventsTableName = "webhook_events"

type webhookEventItem struct {
	ID         string `dynamodbav:"id"`
	Type       string `dynamodbav:"type"`
	ReceivedAt string `dynamodbav:"received_at"`
}

// WebhookEventDynamoRepository is the processed-event set behind webhook
// deduplication.
//
// Table requirements:
//   - PK: id (string, the processor's event id)
//
// The conditional put is the whole idempotency story: the first delivery of
// an event id wins, every later one fails the condition and is reported as
// already processed.

type WebhookEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebhookEventRepository = (*WebhookEventDynamoRepository)(nil)

func NewWebhookEventDynamoRepository(ddb *dynamodb.Client, settings Settings) *WebhookEventDynamoRepository {
	return &WebhookEventDynamoRepository{
		ddb:       ddb,
		tableName: settings.TableName(getenvDefault("WEBHOOK_EVENTS_TABLE", defaultWebhookEventsTableName)),
	}
}

func (r *WebhookEventDynamoRepository) MarkProcessed(ctx context.Context, ev entities.WebhookEvent) (bool, error) {
	it := webhookEventItem{
		ID:         ev.ID,
		Type:       ev.Type,
		ReceivedAt: formatTime(ev.ReceivedAt),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
