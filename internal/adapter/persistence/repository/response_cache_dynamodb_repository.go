package repository

import (
	"context"
	"time"

	"facturacion_movil/internal/cache"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultResponseCacheTableName = "response_cache"

type responseCacheItem struct {
	CacheKey string `dynamodbav:"cache_key"`
	Payload  []byte `dynamodbav:"payload"`
	CachedAt string `dynamodbav:"cached_at"`
}

// ResponseCacheDynamoRepository is the persistent cache tier: raw response
// payloads keyed by their canonical cache key.
//
// Table requirements:
//   - PK: cache_key (string)
//
// Entries carry no TTL; they are valid until overwritten or purged, which is
// exactly the offline-fallback contract of the tier.

type ResponseCacheDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ cache.Store = (*ResponseCacheDynamoRepository)(nil)

func NewResponseCacheDynamoRepository(ddb *dynamodb.Client) *ResponseCacheDynamoRepository {
	return &ResponseCacheDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESPONSE_CACHE_TABLE", defaultResponseCacheTableName),
	}
}

func (r *ResponseCacheDynamoRepository) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cache_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it responseCacheItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return it.Payload, nil
}

func (r *ResponseCacheDynamoRepository) Set(ctx context.Context, key string, data []byte) error {
	av, err := attributevalue.MarshalMap(responseCacheItem{
		CacheKey: key,
		Payload:  data,
		CachedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *ResponseCacheDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cache_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}

// DeletePrefix removes every entry of one key kind. Scan-and-delete is fine
// here: the table only ever holds a handful of response blobs per tenant.
func (r *ResponseCacheDynamoRepository) DeletePrefix(ctx context.Context, prefix string) error {
	return r.deleteMatching(ctx, aws.String("begins_with(cache_key, :prefix)"), map[string]types.AttributeValue{
		":prefix": &types.AttributeValueMemberS{Value: prefix},
	})
}

func (r *ResponseCacheDynamoRepository) PurgeAll(ctx context.Context) error {
	return r.deleteMatching(ctx, nil, nil)
}

func (r *ResponseCacheDynamoRepository) deleteMatching(ctx context.Context, filter *string, values map[string]types.AttributeValue) error {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			ProjectionExpression:      aws.String("cache_key"),
			FilterExpression:          filter,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return err
		}

		for _, item := range out.Items {
			_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName: aws.String(r.tableName),
				Key:       map[string]types.AttributeValue{"cache_key": item["cache_key"]},
			})
			if err != nil {
				return err
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}
