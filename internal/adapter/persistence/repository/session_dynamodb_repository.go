package repository

import (
	"context"
	"time"

	"facturacion_movil/internal/domain/entities"
	"facturacion_movil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSessionsTableName = "sessions"

	// Single-row table: one active session, fixed key.
	activeSessionKey = "active"
)

type sessionItem struct {
	SessionKey string `dynamodbav:"session_key"`
	Token      string `dynamodbav:"token"`
	CompanyID  string `dynamodbav:"company_id"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// SessionDynamoRepository persists the active AuthSession.
//
// Table requirements:
//   - PK: session_key (string)

type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Load(ctx context.Context) (entities.AuthSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_key": &types.AttributeValueMemberS{Value: activeSessionKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AuthSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.AuthSession{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AuthSession{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.AuthSession) error {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) Delete(ctx context.Context) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_key": &types.AttributeValueMemberS{Value: activeSessionKey},
		},
	})
	return err
}

func toSessionItem(s entities.AuthSession) sessionItem {
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	return sessionItem{
		SessionKey: activeSessionKey,
		Token:      s.Token,
		CompanyID:  s.CompanyID,
		UpdatedAt:  updatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSessionItem(it sessionItem) entities.AuthSession {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.AuthSession{
		Token:     it.Token,
		CompanyID: it.CompanyID,
		UpdatedAt: updatedAt,
	}
}
