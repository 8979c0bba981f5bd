package repository

import (
	"context"
	"sort"
	"time"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	solicitationsAuthorIndex  = "author_id-index"
	solicitationsAddressIndex = "address_key-index"
)

type addressItem struct {
	CEP          string `dynamodbav:"cep"`
	Street       string `dynamodbav:"street"`
	Number       string `dynamodbav:"number"`
	Unit         string `dynamodbav:"unit,omitempty"`
	Neighborhood string `dynamodbav:"neighborhood"`
	City         string `dynamodbav:"city"`
	State        string `dynamodbav:"state"`
}

type imageItem struct {
	Path          string `dynamodbav:"path"`
	ThumbnailPath string `dynamodbav:"thumbnail_path,omitempty"`
	ContentType   string `dynamodbav:"content_type"`
}

type solicitationItem struct {
	ID             int64       `dynamodbav:"id"`
	AuthorID       int64       `dynamodbav:"author_id"`
	EmployeeID     *int64      `dynamodbav:"employee_id,omitempty"`
	Progress       string      `dynamodbav:"progress"`
	Accepted       bool        `dynamodbav:"accepted"`
	Type           string      `dynamodbav:"type"`
	AddressKey     string      `dynamodbav:"address_key"`
	Address        addressItem `dynamodbav:"address"`
	Description    string      `dynamodbav:"description"`
	SuggestedValue string      `dynamodbav:"suggested_value"`
	FinalValue     string      `dynamodbav:"final_value,omitempty"`
	Consent        []int64     `dynamodbav:"consent"`
	DesiredDate    string      `dynamodbav:"desired_date"`
	Expiration     string      `dynamodbav:"expiration"`
	CreatedAt      string      `dynamodbav:"created_at"`
	FinishedAt     string      `dynamodbav:"finished_at,omitempty"`
	Image          *imageItem  `dynamodbav:"image,omitempty"`
	Version        int64       `dynamodbav:"version"`
}

// SolicitationDynamoRepository persists solicitations in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: author_id-index (PK: author_id, SK: id)
//   - GSI: address_key-index (PK: address_key)
//
// Every write after Create is conditioned on the stored version.
type SolicitationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISolicitationRepository = (*SolicitationDynamoRepository)(nil)

func NewSolicitationDynamoRepository(ddb DynamoAPI, tableName string) *SolicitationDynamoRepository {
	return &SolicitationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SolicitationDynamoRepository) Create(ctx context.Context, s entities.Solicitation) (entities.Solicitation, error) {
	s.Version = 1
	av, err := attributevalue.MarshalMap(toSolicitationItem(s))
	if err != nil {
		return entities.Solicitation{}, errors.Wrap(err, "solicitations: marshal")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Solicitation{}, nil
		}
		return entities.Solicitation{}, errors.Wrap(err, "solicitations: put")
	}
	return s, nil
}

func (r *SolicitationDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Solicitation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            map[string]types.AttributeValue{"id": numberValue(id)},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Solicitation{}, errors.Wrap(err, "solicitations: get")
	}
	if len(out.Item) == 0 {
		return entities.Solicitation{}, nil
	}
	return unmarshalSolicitation(out.Item)
}

// Update replaces the record when the stored version still matches s.Version.
// A lost race returns the zero value and no error.
func (r *SolicitationDynamoRepository) Update(ctx context.Context, s entities.Solicitation) (entities.Solicitation, error) {
	expected := s.Version
	s.Version = expected + 1
	av, err := attributevalue.MarshalMap(toSolicitationItem(s))
	if err != nil {
		return entities.Solicitation{}, errors.Wrap(err, "solicitations: marshal")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#version": "version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":expected": numberValue(expected)},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Solicitation{}, nil
		}
		return entities.Solicitation{}, errors.Wrap(err, "solicitations: conditional put")
	}
	return s, nil
}

func (r *SolicitationDynamoRepository) FindOpenByAddress(ctx context.Context, addressKey string) (entities.Solicitation, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(solicitationsAddressIndex),
		KeyConditionExpression: aws.String("address_key = :k"),
		FilterExpression:       aws.String("#progress IN (:created, :accepted, :inProgress)"),
		ExpressionAttributeNames: map[string]string{
			"#progress": "progress",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":k":          &types.AttributeValueMemberS{Value: addressKey},
			":created":    &types.AttributeValueMemberS{Value: string(entities.ProgressCreated)},
			":accepted":   &types.AttributeValueMemberS{Value: string(entities.ProgressAccepted)},
			":inProgress": &types.AttributeValueMemberS{Value: string(entities.ProgressInProgress)},
		},
	})
	if err != nil {
		return entities.Solicitation{}, errors.Wrap(err, "solicitations: query address")
	}
	out, err := unmarshalSolicitations(items)
	if err != nil || len(out) == 0 {
		return entities.Solicitation{}, err
	}
	return out[0], nil
}

// List pages by id ascending. Author filters use the author index; the
// unfiltered listing scans the table.
func (r *SolicitationDynamoRepository) List(ctx context.Context, filter interfaces.SolicitationFilter, offset, limit int) ([]entities.Solicitation, error) {
	var (
		items []map[string]types.AttributeValue
		err   error
	)
	if filter.AuthorID != nil {
		items, err = queryAll(ctx, r.ddb, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(solicitationsAuthorIndex),
			KeyConditionExpression: aws.String("author_id = :a"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":a": numberValue(*filter.AuthorID),
			},
			ScanIndexForward: aws.Bool(true),
		})
	} else {
		items, err = scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	}
	if err != nil {
		return nil, errors.Wrap(err, "solicitations: list")
	}

	all, err := unmarshalSolicitations(items)
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return []entities.Solicitation{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *SolicitationDynamoRepository) ListExpirable(ctx context.Context, now time.Time) ([]entities.Solicitation, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#progress = :created AND #expiration < :now"),
		ExpressionAttributeNames: map[string]string{
			"#progress":   "progress",
			"#expiration": "expiration",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":created": &types.AttributeValueMemberS{Value: string(entities.ProgressCreated)},
			":now":     &types.AttributeValueMemberS{Value: formatTime(now)},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "solicitations: scan expirable")
	}
	return unmarshalSolicitations(items)
}

func unmarshalSolicitation(raw map[string]types.AttributeValue) (entities.Solicitation, error) {
	var it solicitationItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Solicitation{}, errors.Wrap(err, "solicitations: unmarshal")
	}
	return fromSolicitationItem(it), nil
}

func unmarshalSolicitations(raw []map[string]types.AttributeValue) ([]entities.Solicitation, error) {
	out := make([]entities.Solicitation, 0, len(raw))
	for _, item := range raw {
		s, err := unmarshalSolicitation(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func toSolicitationItem(s entities.Solicitation) solicitationItem {
	consent := s.Consent
	if consent == nil {
		consent = []int64{}
	}
	it := solicitationItem{
		ID:             s.ID,
		AuthorID:       s.AuthorID,
		EmployeeID:     s.EmployeeID,
		Progress:       string(s.Progress),
		Accepted:       s.Accepted,
		Type:           string(s.Type),
		AddressKey:     s.Address.Key(),
		Address:        toAddressItem(s.Address),
		Description:    s.Description,
		SuggestedValue: s.SuggestedValue.String(),
		FinalValue:     decimalPtrToString(s.FinalValue),
		Consent:        consent,
		DesiredDate:    formatTime(s.DesiredDate),
		Expiration:     formatTime(s.Expiration),
		CreatedAt:      formatTime(s.CreatedAt),
		FinishedAt:     formatTimePtr(s.FinishedAt),
		Version:        s.Version,
	}
	if s.Image != nil {
		it.Image = &imageItem{Path: s.Image.Path, ThumbnailPath: s.Image.ThumbnailPath, ContentType: s.Image.ContentType}
	}
	return it
}

func fromSolicitationItem(it solicitationItem) entities.Solicitation {
	suggested, _ := decimal.NewFromString(it.SuggestedValue)
	consent := it.Consent
	if consent == nil {
		consent = []int64{}
	}
	s := entities.Solicitation{
		ID:             it.ID,
		AuthorID:       it.AuthorID,
		EmployeeID:     it.EmployeeID,
		Progress:       entities.Progress(it.Progress),
		Accepted:       it.Accepted,
		Type:           entities.SolicitationType(it.Type),
		Address:        fromAddressItem(it.Address),
		Description:    it.Description,
		SuggestedValue: suggested,
		FinalValue:     stringToDecimalPtr(it.FinalValue),
		Consent:        consent,
		DesiredDate:    parseTime(it.DesiredDate),
		Expiration:     parseTime(it.Expiration),
		CreatedAt:      parseTime(it.CreatedAt),
		FinishedAt:     parseTimePtr(it.FinishedAt),
		Version:        it.Version,
	}
	if it.Image != nil {
		s.Image = &entities.ImageRef{Path: it.Image.Path, ThumbnailPath: it.Image.ThumbnailPath, ContentType: it.Image.ContentType}
	}
	return s
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{
		CEP:          a.CEP,
		Street:       a.Street,
		Number:       a.Number,
		Unit:         a.Unit,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

func fromAddressItem(it addressItem) entities.Address {
	return entities.Address{
		CEP:          it.CEP,
		Street:       it.Street,
		Number:       it.Number,
		Unit:         it.Unit,
		Neighborhood: it.Neighborhood,
		City:         it.City,
		State:        it.State,
	}
}
