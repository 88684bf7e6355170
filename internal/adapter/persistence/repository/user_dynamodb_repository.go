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

const defaultUsersTableName = "usuarios"

type userItem struct {
	ID          string `dynamodbav:"id"`
	Email       string `dynamodbav:"email"`
	Name        string `dynamodbav:"name"`
	CompanyID   string `dynamodbav:"company_id"`
	Role        string `dynamodbav:"role"`
	CompanyRole string `dynamodbav:"company_role"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, the external identity provider subject)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client, settings Settings) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: settings.TableName(getenvDefault("USERS_TABLE", defaultUsersTableName)),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	it := userItem{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		CompanyID:   u.CompanyID,
		Role:        string(u.Role),
		CompanyRole: string(u.CompanyRole),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{
		ID:          it.ID,
		Email:       it.Email,
		Name:        it.Name,
		CompanyID:   it.CompanyID,
		Role:        entities.UserRole(it.Role),
		CompanyRole: entities.CompanyRole(it.CompanyRole),
	}, nil
}
