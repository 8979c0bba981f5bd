package repository

import (
	"context"

	"coletaverde/internal/domain/entities"
	"coletaverde/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

type chatItem struct {
	ID        string  `dynamodbav:"id"`
	Owners    []int64 `dynamodbav:"owners"`
	CreatedAt string  `dynamodbav:"created_at"`
}

type chatMessageItem struct {
	ChatID string `dynamodbav:"chat_id"`
	SK     string `dynamodbav:"sk"`
	ID     string `dynamodbav:"id"`
	UserID int64  `dynamodbav:"user_id"`
	Text   string `dynamodbav:"text"`
	SentAt string `dynamodbav:"sent_at"`
}

// ChatDynamoRepository stores chats and their messages in two tables.
//
// Table requirements:
//   - chats: PK id (string)
//   - chat_messages: PK chat_id (string), SK sk (string, "<sent_at>#<id>")
type ChatDynamoRepository struct {
	ddb           DynamoAPI
	chatsTable    string
	messagesTable string
}

var _ interfaces.IChatRepository = (*ChatDynamoRepository)(nil)

func NewChatDynamoRepository(ddb DynamoAPI, chatsTable, messagesTable string) *ChatDynamoRepository {
	return &ChatDynamoRepository{ddb: ddb, chatsTable: chatsTable, messagesTable: messagesTable}
}

func (r *ChatDynamoRepository) GetChat(ctx context.Context, chatID string) (entities.Chat, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.chatsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: chatID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Chat{}, errors.Wrap(err, "chats: get")
	}
	if len(out.Item) == 0 {
		return entities.Chat{}, nil
	}
	var it chatItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Chat{}, errors.Wrap(err, "chats: unmarshal")
	}
	return fromChatItem(it), nil
}

// CreateChat is idempotent: a concurrent creator wins and its chat is returned.
func (r *ChatDynamoRepository) CreateChat(ctx context.Context, c entities.Chat) (entities.Chat, error) {
	av, err := attributevalue.MarshalMap(chatItem{
		ID:        c.ID,
		Owners:    []int64{c.Owners[0], c.Owners[1]},
		CreatedAt: formatTime(c.CreatedAt),
	})
	if err != nil {
		return entities.Chat{}, errors.Wrap(err, "chats: marshal")
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.chatsTable),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return r.GetChat(ctx, c.ID)
		}
		return entities.Chat{}, errors.Wrap(err, "chats: put")
	}
	return c, nil
}

func (r *ChatDynamoRepository) AddMessage(ctx context.Context, m entities.ChatMessage) (entities.ChatMessage, error) {
	sentAt := formatTime(m.SentAt)
	av, err := attributevalue.MarshalMap(chatMessageItem{
		ChatID: m.ChatID,
		SK:     sentAt + "#" + m.ID,
		ID:     m.ID,
		UserID: m.UserID,
		Text:   m.Text,
		SentAt: sentAt,
	})
	if err != nil {
		return entities.ChatMessage{}, errors.Wrap(err, "chat messages: marshal")
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.messagesTable),
		Item:      av,
	}); err != nil {
		return entities.ChatMessage{}, errors.Wrap(err, "chat messages: put")
	}
	return m, nil
}

// ListMessages returns the history in send order.
func (r *ChatDynamoRepository) ListMessages(ctx context.Context, chatID string) ([]entities.ChatMessage, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.messagesTable),
		KeyConditionExpression: aws.String("chat_id = :c"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c": &types.AttributeValueMemberS{Value: chatID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "chat messages: query")
	}

	out := make([]entities.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var it chatMessageItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, errors.Wrap(err, "chat messages: unmarshal")
		}
		out = append(out, entities.ChatMessage{
			ID:     it.ID,
			ChatID: it.ChatID,
			UserID: it.UserID,
			Text:   it.Text,
			SentAt: parseTime(it.SentAt),
		})
	}
	return out, nil
}

func fromChatItem(it chatItem) entities.Chat {
	c := entities.Chat{ID: it.ID, CreatedAt: parseTime(it.CreatedAt)}
	copy(c.Owners[:], it.Owners)
	return c
}
