package repository

import (
	"context"
	"errors"
	"time"

	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName    = "lotes"
	ordersBanhoCompanyIndex   = "banho_company_id-index"
	ordersClienteCompanyIndex = "cliente_company_id-index"
	ordersAccessCodeIndex     = "access_code-index"
)

type orderItem struct {
	ID               string `dynamodbav:"id"`
	BanhoCompanyID   string `dynamodbav:"banho_company_id"`
	ClienteCompanyID string `dynamodbav:"cliente_company_id,omitempty"`
	Status           string `dynamodbav:"status"`
	GoldPrice        string `dynamodbav:"gold_price"`
	DefaultMargin    string `dynamodbav:"default_margin"`
	Camadas          string `dynamodbav:"camadas"`
	MaoDeObra        string `dynamodbav:"mao_de_obra"`
	AccessCode       string `dynamodbav:"access_code"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order (lote) entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: banho_company_id-index (PK: banho_company_id)
//   - GSI: cliente_company_id-index (PK: cliente_company_id)
//   - GSI: access_code-index (PK: access_code)
//
// Monetary/parameter fields are stored as exact decimal strings so the
// frozen-at-creation snapshot survives round trips untouched.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, settings Settings) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: settings.TableName(getenvDefault("ORDERS_TABLE", defaultOrdersTableName)),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByAccessCode(ctx context.Context, code string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersAccessCodeIndex),
		KeyConditionExpression: aws.String("access_code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByBanhoCompany(ctx context.Context, companyID string) ([]entities.Order, error) {
	return r.listByIndex(ctx, ordersBanhoCompanyIndex, "banho_company_id", companyID)
}

func (r *OrderDynamoRepository) ListByClienteCompany(ctx context.Context, companyID string) ([]entities.Order, error) {
	return r.listByIndex(ctx, ordersClienteCompanyIndex, "cliente_company_id", companyID)
}

func (r *OrderDynamoRepository) listByIndex(ctx context.Context, index, field, value string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(field + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateClienteCompany(ctx context.Context, id, clienteCompanyID string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #cliente = :cliente, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":cliente":    &types.AttributeValueMemberS{Value: clienteCompanyID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#cliente":    "cliente_company_id",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:               o.ID,
		BanhoCompanyID:   o.BanhoCompanyID,
		ClienteCompanyID: o.ClienteCompanyID,
		Status:           string(o.Status),
		GoldPrice:        floatToString(o.GoldPrice),
		DefaultMargin:    floatToString(o.DefaultMargin),
		Camadas:          floatToString(o.Camadas),
		MaoDeObra:        floatToString(o.MaoDeObra),
		AccessCode:       o.AccessCode,
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:               it.ID,
		BanhoCompanyID:   it.BanhoCompanyID,
		ClienteCompanyID: it.ClienteCompanyID,
		Status:           entities.OrderStatus(it.Status),
		GoldPrice:        stringToFloat(it.GoldPrice),
		DefaultMargin:    stringToFloat(it.DefaultMargin),
		Camadas:          stringToFloat(it.Camadas),
		MaoDeObra:        stringToFloat(it.MaoDeObra),
		AccessCode:       it.AccessCode,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
