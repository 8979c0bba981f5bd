package repository

import (
	"context"
	"strings"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const (
	usersNameIndex  = "name-index"
	usersEmailIndex = "email-index"
	usersTokenIndex = "verification_token-index"
)

type userItem struct {
	ID                int64         `dynamodbav:"id"`
	Name              string        `dynamodbav:"name"`
	Email             string        `dynamodbav:"email"`
	PasswordHash      string        `dynamodbav:"password_hash"`
	Role              string        `dynamodbav:"role"`
	Description       string        `dynamodbav:"description,omitempty"`
	CPF               string        `dynamodbav:"cpf,omitempty"`
	CNPJ              string        `dynamodbav:"cnpj,omitempty"`
	Phone             string        `dynamodbav:"phone,omitempty"`
	Addresses         []addressItem `dynamodbav:"addresses"`
	EmailVerified     bool          `dynamodbav:"email_verified"`
	VerificationToken string        `dynamodbav:"verification_token,omitempty"`
	CreatedAt         string        `dynamodbav:"created_at"`
}

// UserDynamoRepository persists accounts in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: name-index (PK: name)
//   - GSI: email-index (PK: email, stored lower-case)
//   - GSI: verification_token-index (PK: verification_token, sparse)
//
// Name and email uniqueness is checked through the indexes before the put, so
// two concurrent registrations for the same name can still both succeed.
type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	byName, err := r.GetByName(ctx, u.Name)
	if err != nil {
		return entities.User{}, err
	}
	byEmail, err := r.GetByEmail(ctx, u.Email)
	if err != nil {
		return entities.User{}, err
	}
	if byName.ID != 0 || byEmail.ID != 0 {
		return entities.User{}, nil
	}

	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, errors.Wrap(err, "users: marshal")
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.User{}, nil
		}
		return entities.User{}, errors.Wrap(err, "users: put")
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id int64) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": numberValue(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, errors.Wrap(err, "users: get")
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	return unmarshalUser(out.Item)
}

func (r *UserDynamoRepository) GetByName(ctx context.Context, name string) (entities.User, error) {
	return r.findBy(ctx, usersNameIndex, "name", name)
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.findBy(ctx, usersEmailIndex, "email", strings.ToLower(email))
}

func (r *UserDynamoRepository) GetByVerificationToken(ctx context.Context, token string) (entities.User, error) {
	if token == "" {
		return entities.User{}, nil
	}
	return r.findBy(ctx, usersTokenIndex, "verification_token", token)
}

func (r *UserDynamoRepository) Update(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, errors.Wrap(err, "users: marshal")
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.User{}, nil
		}
		return entities.User{}, errors.Wrap(err, "users: put")
	}
	return u, nil
}

func (r *UserDynamoRepository) findBy(ctx context.Context, index, attr, value string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, errors.Wrapf(err, "users: query %s", index)
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}
	return unmarshalUser(out.Items[0])
}

func unmarshalUser(raw map[string]types.AttributeValue) (entities.User, error) {
	var it userItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.User{}, errors.Wrap(err, "users: unmarshal")
	}
	return fromUserItem(it), nil
}

func toUserItem(u entities.User) userItem {
	addresses := make([]addressItem, 0, len(u.Addresses))
	for _, a := range u.Addresses {
		addresses = append(addresses, toAddressItem(a))
	}
	return userItem{
		ID:                u.ID,
		Name:              u.Name,
		Email:             strings.ToLower(u.Email),
		PasswordHash:      u.PasswordHash,
		Role:              string(u.Role),
		Description:       u.Description,
		CPF:               u.CPF,
		CNPJ:              u.CNPJ,
		Phone:             u.Phone,
		Addresses:         addresses,
		EmailVerified:     u.EmailVerified,
		VerificationToken: u.VerificationToken,
		CreatedAt:         formatTime(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	var addresses []entities.Address
	for _, a := range it.Addresses {
		addresses = append(addresses, fromAddressItem(a))
	}
	return entities.User{
		ID:                it.ID,
		Name:              it.Name,
		Email:             it.Email,
		PasswordHash:      it.PasswordHash,
		Role:              entities.Role(it.Role),
		Description:       it.Description,
		CPF:               it.CPF,
		CNPJ:              it.CNPJ,
		Phone:             it.Phone,
		Addresses:         addresses,
		EmailVerified:     it.EmailVerified,
		VerificationToken: it.VerificationToken,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
