/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
)

// Association is one entity⇄label pair.
type Association struct {
	// Namespace groups the pairs of one tag set in shared storage.
	Namespace string `json:"Namespace,omitempty" dynamodbav:"Namespace,omitempty" yaml:"-"`
	// EntityID is the caller-owned identifier of the tagged entity.
	EntityID string `json:"EntityID" dynamodbav:"EntityID" yaml:"entity"`
	// LabelName is the label's identity key.
	LabelName string `json:"LabelName" dynamodbav:"LabelName" yaml:"label"`
	// CreatedAt is set when the pair is first persisted.
	CreatedAt *strfmt.DateTime `json:"CreatedAt,omitempty" dynamodbav:"CreatedAt,omitempty" yaml:"createdAt,omitempty"`
}

// Key returns a stable identifier for the pair within its namespace.
func (a Association) Key() string {
	return a.EntityID + "\x00" + a.LabelName
}

// QueryParams defines parameters for a partition query.
type QueryParams struct {
	// TableName overrides the datastore's table when set.
	TableName string
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit defines an optional limit per query page.
	Limit *int32
	// ScanIndexForward specifies the order for index traversal.
	ScanIndexForward *bool
}
