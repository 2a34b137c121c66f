/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The DynamodbDataStore supports:
  - Single-table design with macro-based key templates
  - Paginated queries that follow LastEvaluatedKey to the end
  - A label-first GSI for association records
  - Pluggable clients for tests through the Client interface

Macro Expansion:
Keys are templates filled from record fields. Association records use:

	"PK":  "TAGSET#{Namespace}",                   // Becomes "TAGSET#default"
	"SK":  "ENTITY#{EntityID}#LABEL#{LabelName}",  // "ENTITY#file1#LABEL#Urgent"
	"PK1": "TAGSET#{Namespace}#LABEL#{LabelName}", // GSI1 partition
	"SK1": "ENTITY#{EntityID}",

A template whose macros cannot all be filled expands to nothing; PK and SK
must always expand.

Usage:

	store, err := ddb.NewDynamodbDataStore[storagemodels.Association](ctx, key, secret, region, table)
	records, err := store.Query(ctx, ddb.NamespaceQuery("default"))
	tagged, err := store.Query(ctx, ddb.LabelQuery("default", "Urgent"))

The table needs string keys PK/SK and a GSI named GSI1 on PK1/SK1.
*/
package ddb
