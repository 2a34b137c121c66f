/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/tagstore/registry"
	"github.com/suparena/tagstore/storagemodels"
)

// AssociationIndexMap keys association records: one partition per namespace,
// plus a GSI1 partition per (namespace, label).
var AssociationIndexMap = map[string]string{
	"PK":  "TAGSET#{Namespace}",
	"SK":  "ENTITY#{EntityID}#LABEL#{LabelName}",
	"PK1": "TAGSET#{Namespace}#LABEL#{LabelName}",
	"SK1": "ENTITY#{EntityID}",
}

func init() {
	if err := registry.RegisterIndexMap[storagemodels.Association](AssociationIndexMap); err != nil {
		panic(fmt.Sprintf("ddb: association index map: %v", err))
	}
}

// NamespaceQuery selects every association stored under namespace.
func NamespaceQuery(namespace string) *storagemodels.QueryParams {
	return &storagemodels.QueryParams{
		KeyConditionExpression: "PK = :pk",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: "TAGSET#" + namespace},
		},
	}
}

// LabelQuery selects the associations of one label through GSI1.
func LabelQuery(namespace, labelName string) *storagemodels.QueryParams {
	gsi, _ := GetGSIConfig("GSI1")
	return &storagemodels.QueryParams{
		IndexName:              &gsi.IndexName,
		KeyConditionExpression: gsi.PartitionKeyName + " = :pk",
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: "TAGSET#" + namespace + "#LABEL#" + labelName},
		},
	}
}
