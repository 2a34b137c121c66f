/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/tagstore/storagemodels"
)

// flakyClient fails the first failures queries with err, then delegates.
type flakyClient struct {
	*fakeClient
	failures int
	err      error
}

func (f *flakyClient) Query(ctx context.Context, in *sdk.QueryInput, opts ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	if f.failures > 0 {
		f.failures--
		return nil, f.err
	}
	return f.fakeClient.Query(ctx, in, opts...)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(&types.ProvisionedThroughputExceededException{}))
	assert.True(t, isRetryableError(fmt.Errorf("wrapped: %w", &types.RequestLimitExceeded{})))
	assert.True(t, isRetryableError(&types.InternalServerError{}))
	assert.False(t, isRetryableError(&types.ResourceNotFoundException{}))
	assert.False(t, isRetryableError(stderrors.New("boom")))
}

func TestQuery_RetriesThrottling(t *testing.T) {
	ctx := context.Background()
	client := &flakyClient{fakeClient: newFakeClient(0), failures: 2, err: &types.ProvisionedThroughputExceededException{}}
	store := NewDynamodbDataStoreWithClient[storagemodels.Association](client, "tags").WithRetry(3, time.Millisecond)

	require.NoError(t, store.Put(ctx, storagemodels.Association{Namespace: "default", EntityID: "file1", LabelName: "Urgent"}))

	records, err := store.Query(ctx, NamespaceQuery("default"))
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 0, client.failures)
}

func TestQuery_GivesUpAfterMaxRetries(t *testing.T) {
	client := &flakyClient{fakeClient: newFakeClient(0), failures: 10, err: &types.RequestLimitExceeded{}}
	store := NewDynamodbDataStoreWithClient[storagemodels.Association](client, "tags").WithRetry(2, time.Millisecond)

	_, err := store.Query(context.Background(), NamespaceQuery("default"))
	require.Error(t, err)
	var limit *types.RequestLimitExceeded
	assert.True(t, stderrors.As(err, &limit))
	assert.Equal(t, 7, client.failures)
}

func TestQuery_DoesNotRetryPermanentErrors(t *testing.T) {
	client := &flakyClient{fakeClient: newFakeClient(0), failures: 10, err: &types.ResourceNotFoundException{}}
	store := NewDynamodbDataStoreWithClient[storagemodels.Association](client, "tags").WithRetry(3, time.Millisecond)

	_, err := store.Query(context.Background(), NamespaceQuery("default"))
	require.Error(t, err)
	assert.Equal(t, 9, client.failures)
}
