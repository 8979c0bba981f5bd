package repository

import (
	"context"

	"coletaverde/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TableDefinitions describes every table the repositories expect, keyed by
// the configured names. Used for local development against DynamoDB Local.
func TableDefinitions(t config.Tables) []dynamodb.CreateTableInput {
	str := func(name string) types.AttributeDefinition {
		return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
	}
	num := func(name string) types.AttributeDefinition {
		return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeN}
	}
	hash := func(name string) types.KeySchemaElement {
		return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
	}
	rng := func(name string) types.KeySchemaElement {
		return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeRange}
	}
	gsi := func(name string, keys ...types.KeySchemaElement) types.GlobalSecondaryIndex {
		return types.GlobalSecondaryIndex{
			IndexName:  aws.String(name),
			KeySchema:  keys,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}
	}

	return []dynamodb.CreateTableInput{
		{
			TableName:            aws.String(t.Solicitations),
			AttributeDefinitions: []types.AttributeDefinition{num("id"), num("author_id"), str("address_key")},
			KeySchema:            []types.KeySchemaElement{hash("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				gsi(solicitationsAuthorIndex, hash("author_id"), rng("id")),
				gsi(solicitationsAddressIndex, hash("address_key")),
			},
		},
		{
			TableName:            aws.String(t.Users),
			AttributeDefinitions: []types.AttributeDefinition{num("id"), str("name"), str("email"), str("verification_token")},
			KeySchema:            []types.KeySchemaElement{hash("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				gsi(usersNameIndex, hash("name")),
				gsi(usersEmailIndex, hash("email")),
				gsi(usersTokenIndex, hash("verification_token")),
			},
		},
		{
			TableName:            aws.String(t.Chats),
			AttributeDefinitions: []types.AttributeDefinition{str("id")},
			KeySchema:            []types.KeySchemaElement{hash("id")},
		},
		{
			TableName:            aws.String(t.Messages),
			AttributeDefinitions: []types.AttributeDefinition{str("chat_id"), str("sk")},
			KeySchema:            []types.KeySchemaElement{hash("chat_id"), rng("sk")},
		},
		{
			TableName:            aws.String(t.Counters),
			AttributeDefinitions: []types.AttributeDefinition{str("name")},
			KeySchema:            []types.KeySchemaElement{hash("name")},
		},
		{
			TableName:            aws.String(t.Payments),
			AttributeDefinitions: []types.AttributeDefinition{str("id"), num("solicitation_id")},
			KeySchema:            []types.KeySchemaElement{hash("id")},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				gsi(paymentsSolicitationIDIndex, hash("solicitation_id")),
			},
		},
	}
}

// EnsureTables creates any missing table with on-demand billing.
func EnsureTables(ctx context.Context, ddb DynamoAPI, t config.Tables, logger logrus.FieldLogger) error {
	for _, def := range TableDefinitions(t) {
		def := def
		_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return errors.Wrapf(err, "describe table %s", aws.ToString(def.TableName))
		}

		def.BillingMode = types.BillingModePayPerRequest
		if _, err := ddb.CreateTable(ctx, &def); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return errors.Wrapf(err, "create table %s", aws.ToString(def.TableName))
		}
		logger.WithField("table", aws.ToString(def.TableName)).Info("table created")
	}
	return nil
}
