/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	tserrors "github.com/suparena/tagstore/errors"
	"github.com/suparena/tagstore/registry"
)

// Client is the subset of the DynamoDB API the datastore uses.
type Client interface {
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

// DynamodbDataStore implements datastore.DataStore[T] on a single DynamoDB table.
// Keys come from the index map registered for T.
type DynamodbDataStore[T any] struct {
	client       Client
	tableName    string
	maxRetries   int
	retryBackoff time.Duration
}

var macroPattern = regexp.MustCompile(`{([^}]+)}`)

func encodeOptions(o *attributevalue.EncoderOptions) {
	o.UseEncodingMarshalers = true
}

func decodeOptions(o *attributevalue.DecoderOptions) {
	o.UseEncodingUnmarshalers = true
}

// expandMacros fills each template in indexMap with fields of keysInput.
// A template with any macro naming a missing, empty or non-scalar field
// expands to "" as a whole, so partial keys are never produced.
func expandMacros(indexMap map[string]string, keysInput any) (map[string]string, error) {
	av, err := attributevalue.MarshalMapWithOptions(keysInput, encodeOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keysInput: %w", err)
	}

	res := make(map[string]string, len(indexMap))
	for fieldName, template := range indexMap {
		missing := false
		expanded := macroPattern.ReplaceAllStringFunc(template, func(macro string) string {
			v := scalarString(av[strings.Trim(macro, "{}")])
			if v == "" {
				missing = true
			}
			return v
		})
		if missing {
			expanded = ""
		}
		res[fieldName] = expanded
	}
	return res, nil
}

func scalarString(val types.AttributeValue) string {
	switch tv := val.(type) {
	case *types.AttributeValueMemberS:
		return tv.Value
	case *types.AttributeValueMemberN:
		return tv.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprintf("%v", tv.Value)
	default:
		return ""
	}
}

// NewDynamoDBClient initializes a DynamoDB client using static AWS credentials.
func NewDynamoDBClient(ctx context.Context, awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	log.Printf("DynamoDB client initialized in region: %s", awsRegion)
	return sdk.NewFromConfig(cfg), nil
}

// NewDynamodbDataStore constructs a DynamodbDataStore for type T backed by a new client.
func NewDynamodbDataStore[T any](ctx context.Context, awsAccessKey, awsSecretKey, awsRegion, awsDDBTableName string) (*DynamodbDataStore[T], error) {
	client, err := NewDynamoDBClient(ctx, awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewDynamodbDataStoreWithClient[T](client, awsDDBTableName), nil
}

// NewDynamodbDataStoreWithClient constructs a DynamodbDataStore for type T on an existing client.
func NewDynamodbDataStoreWithClient[T any](client Client, tableName string) *DynamodbDataStore[T] {
	return &DynamodbDataStore[T]{
		client:       client,
		tableName:    tableName,
		maxRetries:   defaultMaxRetries,
		retryBackoff: defaultRetryBackoff,
	}
}

func (d *DynamodbDataStore[T]) indexMap() (map[string]string, error) {
	indexMap, ok := registry.GetIndexMap[T]()
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: %T", tserrors.ErrNoIndexMap, zero)
	}
	return indexMap, nil
}

// GetOne retrieves the item whose key fields match keyInput.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, keyInput any) (*T, error) {
	key, err := d.getKey(keyInput)
	if err != nil {
		return nil, err
	}

	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		var zero T
		return nil, tserrors.NewNotFoundError(fmt.Sprintf("%T", zero), keyString(key))
	}

	result := new(T)
	if err := attributevalue.UnmarshalMapWithOptions(out.Item, result, decodeOptions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return result, nil
}

// Put stores record with every templated key attribute filled in.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, record T) error {
	indexMap, err := d.indexMap()
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMapWithOptions(record, encodeOptions)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	expanded, err := expandMacros(indexMap, record)
	if err != nil {
		return err
	}
	if _, err := buildKeyFromExpanded(expanded); err != nil {
		return err
	}
	for k, v := range expanded {
		// Key attributes may not be empty strings; an unfilled GSI key just
		// leaves the item out of that index.
		if v == "" {
			continue
		}
		av[k] = &types.AttributeValueMemberS{Value: v}
	}

	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes the item whose key fields match keyInput.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, keyInput any) error {
	key, err := d.getKey(keyInput)
	if err != nil {
		return err
	}

	condition := "attribute_exists(PK)"
	_, err = d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName:           &d.tableName,
		Key:                 key,
		ConditionExpression: &condition,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			var zero T
			return tserrors.NewNotFoundError(fmt.Sprintf("%T", zero), keyString(key))
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

func (d *DynamodbDataStore[T]) getKey(keyInput any) (map[string]types.AttributeValue, error) {
	indexMap, err := d.indexMap()
	if err != nil {
		return nil, err
	}
	expanded, err := expandMacros(indexMap, keyInput)
	if err != nil {
		return nil, err
	}
	key, err := buildKeyFromExpanded(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}
	return key, nil
}

// buildKeyFromExpanded builds a DynamoDB key from the expanded index map.
// Both PK and SK must be present and every macro in them must have resolved.
func buildKeyFromExpanded(expanded map[string]string) (map[string]types.AttributeValue, error) {
	pk, okPK := expanded["PK"]
	sk, okSK := expanded["SK"]

	if !okPK || !okSK || pk == "" || sk == "" {
		return nil, tserrors.NewValidationError("key", "expanded index map missing valid PK or SK")
	}

	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}, nil
}

func keyString(key map[string]types.AttributeValue) string {
	var pk, sk string
	if v, ok := key["PK"].(*types.AttributeValueMemberS); ok {
		pk = v.Value
	}
	if v, ok := key["SK"].(*types.AttributeValueMemberS); ok {
		sk = v.Value
	}
	return pk + "|" + sk
}
