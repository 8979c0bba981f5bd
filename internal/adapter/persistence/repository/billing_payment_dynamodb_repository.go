package repository

import (
	"context"
	"sort"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const paymentsSolicitationIDIndex = "solicitation_id-index"

type billingPaymentItem struct {
	ID             string                 `dynamodbav:"id"`
	SolicitationID int64                  `dynamodbav:"solicitation_id"`
	AuthorID       int64                  `dynamodbav:"author_id"`
	Amount         string                 `dynamodbav:"amount"`
	Date           string                 `dynamodbav:"date"`
	Status         string                 `dynamodbav:"status"`
	MPPayload      map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw   string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BillingPaymentDynamoRepository persists BillingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: solicitation_id-index (PK: solicitation_id, number)
type BillingPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(ddb DynamoAPI, tableName string) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	av, err := attributevalue.MarshalMap(toBillingPaymentItem(p))
	if err != nil {
		return entities.BillingPayment{}, errors.Wrap(err, "payments: marshal")
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
		return entities.BillingPayment{}, errors.Wrap(err, "payments: put")
	}
	return p, nil
}

func (r *BillingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingPayment{}, errors.Wrap(err, "payments: get")
	}
	if len(out.Item) == 0 {
		return entities.BillingPayment{}, nil
	}

	var it billingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingPayment{}, errors.Wrap(err, "payments: unmarshal")
	}
	return fromBillingPaymentItem(it), nil
}

// ListBySolicitationID returns the payments of a solicitation oldest first.
func (r *BillingPaymentDynamoRepository) ListBySolicitationID(ctx context.Context, solicitationID int64) ([]entities.BillingPayment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsSolicitationIDIndex),
		KeyConditionExpression: aws.String("solicitation_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": numberValue(solicitationID),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "payments: query")
	}

	items := make([]entities.BillingPayment, 0, len(raw))
	for _, item := range raw {
		var it billingPaymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, errors.Wrap(err, "payments: unmarshal")
		}
		items = append(items, fromBillingPaymentItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func toBillingPaymentItem(p entities.BillingPayment) billingPaymentItem {
	return billingPaymentItem{
		ID:             p.ID,
		SolicitationID: p.SolicitationID,
		AuthorID:       p.AuthorID,
		Amount:         p.Amount.String(),
		Date:           formatTime(p.Date),
		Status:         string(p.Status),
		MPPayload:      p.MPPayload,
		MPPayloadRaw:   string(p.MPPayloadRaw),
	}
}

func fromBillingPaymentItem(it billingPaymentItem) entities.BillingPayment {
	amount, _ := decimal.NewFromString(it.Amount)
	p := entities.BillingPayment{
		ID:             it.ID,
		SolicitationID: it.SolicitationID,
		AuthorID:       it.AuthorID,
		Amount:         amount,
		Date:           parseTime(it.Date),
		Status:         entities.PaymentStatus(it.Status),
		MPPayload:      it.MPPayload,
	}
	if it.MPPayloadRaw != "" {
		p.MPPayloadRaw = []byte(it.MPPayloadRaw)
	}
	return p
}
