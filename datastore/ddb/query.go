/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/tagstore/storagemodels"
)

// Query runs params against the table and follows LastEvaluatedKey until the
// result set is exhausted. Limit, when set, is the page size. Throttled
// pages are retried per WithRetry.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	tableName := params.TableName
	if tableName == "" {
		tableName = d.tableName
	}

	input := &sdk.QueryInput{
		TableName:                 &tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		FilterExpression:          params.FilterExpression,
		IndexName:                 params.IndexName,
		Limit:                     params.Limit,
		ScanIndexForward:          params.ScanIndexForward,
	}

	var (
		results []T
		lastKey map[string]types.AttributeValue
		page    int
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		input.ExclusiveStartKey = lastKey
		out, err := d.queryWithRetry(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query error on page %d: %w", page+1, err)
		}
		page++

		for _, item := range out.Items {
			var record T
			if err := attributevalue.UnmarshalMapWithOptions(item, &record, decodeOptions); err != nil {
				return nil, fmt.Errorf("failed to unmarshal item on page %d: %w", page, err)
			}
			results = append(results, record)
		}

		if len(out.LastEvaluatedKey) == 0 {
			return results, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}
