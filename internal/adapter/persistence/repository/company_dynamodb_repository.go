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

const defaultCompaniesTableName = "empresas"

type subscriptionItem struct {
	Status                 string `dynamodbav:"status"`
	Plan                   string `dynamodbav:"plan"`
	ProviderCustomerID     string `dynamodbav:"provider_customer_id,omitempty"`
	ProviderSubscriptionID string `dynamodbav:"provider_subscription_id,omitempty"`
	TrialStartedAt         string `dynamodbav:"trial_started_at"`
	TrialEndsAt            string `dynamodbav:"trial_ends_at"`
}

type billingItem struct {
	Status    string `dynamodbav:"status"`
	Mode      string `dynamodbav:"mode"`
	Provider  string `dynamodbav:"provider,omitempty"`
	IntentID  string `dynamodbav:"intent_id,omitempty"`
	Amount    string `dynamodbav:"amount,omitempty"`
	PaidAt    string `dynamodbav:"paid_at,omitempty"`
	SkippedAt string `dynamodbav:"skipped_at,omitempty"`
}

type companyItem struct {
	ID           string            `dynamodbav:"id"`
	Name         string            `dynamodbav:"name"`
	TradingName  string            `dynamodbav:"trading_name"`
	Role         string            `dynamodbav:"role"`
	Email        string            `dynamodbav:"email"`
	TaxID        string            `dynamodbav:"tax_id"`
	Phone        string            `dynamodbav:"phone"`
	Address      string            `dynamodbav:"address"`
	Subscription *subscriptionItem `dynamodbav:"subscription,omitempty"`
	Billing      *billingItem      `dynamodbav:"billing,omitempty"`
}

// CompanyDynamoRepository persists Company entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Subscription and billing are nested documents; the status update uses a
// document path so the rest of the subscription record is left untouched.

type CompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb *dynamodb.Client, settings Settings) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{
		ddb:       ddb,
		tableName: settings.TableName(getenvDefault("COMPANIES_TABLE", defaultCompaniesTableName)),
	}
}

func (r *CompanyDynamoRepository) Create(ctx context.Context, c entities.Company) (entities.Company, error) {
	it := toCompanyItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Company{}, err
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
		return entities.Company{}, err
	}
	return c, nil
}

func (r *CompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Company, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Company{}, err
	}
	if len(out.Item) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

func (r *CompanyDynamoRepository) UpdateSubscriptionStatus(ctx context.Context, id string, status entities.SubscriptionStatus) (entities.Company, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND attribute_exists(#subscription)"),
		UpdateExpression:    aws.String("SET #subscription.#status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#subscription": "subscription",
			"#status":       "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Company{}, nil
		}
		return entities.Company{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

func (r *CompanyDynamoRepository) UpdateBilling(ctx context.Context, id string, billing entities.BillingRecord) (entities.Company, error) {
	bi := toBillingItem(billing)
	av, err := attributevalue.MarshalMap(bi)
	if err != nil {
		return entities.Company{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #billing = :billing"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":billing": &types.AttributeValueMemberM{Value: av},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#billing": "billing",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Company{}, nil
		}
		return entities.Company{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Company{}, nil
	}

	var it companyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Company{}, err
	}
	return fromCompanyItem(it), nil
}

func (r *CompanyDynamoRepository) List(ctx context.Context) ([]entities.Company, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	companies := make([]entities.Company, 0, len(out.Items))
	for _, raw := range out.Items {
		var it companyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		companies = append(companies, fromCompanyItem(it))
	}
	return companies, nil
}

func toCompanyItem(c entities.Company) companyItem {
	it := companyItem{
		ID:          c.ID,
		Name:        c.Name,
		TradingName: c.TradingName,
		Role:        string(c.Role),
		Email:       c.Email,
		TaxID:       c.TaxID,
		Phone:       c.Phone,
		Address:     c.Address,
	}
	if c.Subscription != nil {
		it.Subscription = &subscriptionItem{
			Status:                 string(c.Subscription.Status),
			Plan:                   c.Subscription.Plan,
			ProviderCustomerID:     c.Subscription.ProviderCustomerID,
			ProviderSubscriptionID: c.Subscription.ProviderSubscriptionID,
			TrialStartedAt:         formatTime(c.Subscription.TrialStartedAt),
			TrialEndsAt:            formatTime(c.Subscription.TrialEndsAt),
		}
	}
	if c.Billing != nil {
		bi := toBillingItem(*c.Billing)
		it.Billing = &bi
	}
	return it
}

func fromCompanyItem(it companyItem) entities.Company {
	c := entities.Company{
		ID:          it.ID,
		Name:        it.Name,
		TradingName: it.TradingName,
		Role:        entities.CompanyRole(it.Role),
		Email:       it.Email,
		TaxID:       it.TaxID,
		Phone:       it.Phone,
		Address:     it.Address,
	}
	if it.Subscription != nil {
		c.Subscription = &entities.SubscriptionInfo{
			Status:                 entities.SubscriptionStatus(it.Subscription.Status),
			Plan:                   it.Subscription.Plan,
			ProviderCustomerID:     it.Subscription.ProviderCustomerID,
			ProviderSubscriptionID: it.Subscription.ProviderSubscriptionID,
			TrialStartedAt:         parseTime(it.Subscription.TrialStartedAt),
			TrialEndsAt:            parseTime(it.Subscription.TrialEndsAt),
		}
	}
	if it.Billing != nil {
		b := fromBillingItem(*it.Billing)
		c.Billing = &b
	}
	return c
}

func toBillingItem(b entities.BillingRecord) billingItem {
	it := billingItem{
		Status:   b.Status,
		Mode:     b.Mode,
		Provider: b.Provider,
		IntentID: b.IntentID,
	}
	if b.Amount != 0 {
		it.Amount = floatToString(b.Amount)
	}
	if !b.PaidAt.IsZero() {
		it.PaidAt = formatTime(b.PaidAt)
	}
	if !b.SkippedAt.IsZero() {
		it.SkippedAt = formatTime(b.SkippedAt)
	}
	return it
}

func fromBillingItem(it billingItem) entities.BillingRecord {
	b := entities.BillingRecord{
		Status:   it.Status,
		Mode:     it.Mode,
		Provider: it.Provider,
		IntentID: it.IntentID,
		Amount:   stringToFloat(it.Amount),
	}
	if it.PaidAt != "" {
		b.PaidAt = parseTime(it.PaidAt)
	}
	if it.SkippedAt != "" {
		b.SkippedAt = parseTime(it.SkippedAt)
	}
	return b
}
