package repository

import (
	"context"
	"strconv"

	"coletaverde/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

// DynamoSequence hands out monotonically increasing ids from a counters
// table (PK: name, string) using atomic ADD updates.
type DynamoSequence struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISequence = (*DynamoSequence)(nil)

func NewDynamoSequence(ddb DynamoAPI, tableName string) *DynamoSequence {
	return &DynamoSequence{ddb: ddb, tableName: tableName}
}

func (s *DynamoSequence) Next(ctx context.Context, name string) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression:         aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{"#value": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": numberValue(1),
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, errors.Wrapf(err, "sequence %s", name)
	}

	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.Errorf("sequence %s: missing counter value", name)
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "sequence %s", name)
	}
	return v, nil
}
