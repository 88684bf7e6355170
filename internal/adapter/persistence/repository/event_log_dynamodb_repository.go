package repository

import (
	"context"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEventLogTableName = "eventos"
	eventLogCompanyIDIndex   = "company_id-index"
)

type analyticsEventItem struct {
	ID              string         `dynamodbav:"id"`
	Type            string         `dynamodbav:"type"`
	Timestamp       string         `dynamodbav:"timestamp"`
	CompanyID       string         `dynamodbav:"company_id"`
	CompanyRole     string         `dynamodbav:"company_role"`
	RelatedEntityID string         `dynamodbav:"related_entity_id"`
	Metadata        map[string]any `dynamodbav:"metadata,omitempty"`
}

// EventLogDynamoRepository persists the analytics event log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)

type EventLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEventLogRepository = (*EventLogDynamoRepository)(nil)

func NewEventLogDynamoRepository(ddb *dynamodb.Client, settings Settings) *EventLogDynamoRepository {
	return &EventLogDynamoRepository{
		ddb:       ddb,
		tableName: settings.TableName(getenvDefault("EVENT_LOG_TABLE", defaultEventLogTableName)),
	}
}

func (r *EventLogDynamoRepository) Append(ctx context.Context, ev entities.AnalyticsEvent) error {
	it := analyticsEventItem{
		ID:              ev.ID,
		Type:            string(ev.Type),
		Timestamp:       formatTime(ev.Timestamp),
		CompanyID:       ev.CompanyID,
		CompanyRole:     string(ev.CompanyRole),
		RelatedEntityID: ev.RelatedEntityID,
		Metadata:        ev.Metadata,
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *EventLogDynamoRepository) ListByCompany(ctx context.Context, companyID string) ([]entities.AnalyticsEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(eventLogCompanyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.AnalyticsEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it analyticsEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		events = append(events, entities.AnalyticsEvent{
			ID:              it.ID,
			Type:            entities.EventType(it.Type),
			Timestamp:       parseTime(it.Timestamp),
			CompanyID:       it.CompanyID,
			CompanyRole:     entities.CompanyRole(it.CompanyRole),
			RelatedEntityID: it.RelatedEntityID,
			Metadata:        it.Metadata,
		})
	}
	return events, nil
}
