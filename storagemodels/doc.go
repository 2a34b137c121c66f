/*
Package storagemodels defines the data structures shared between the tagging
core and its persistence collaborators.

Key Types:

Association:
One (entity, label) pair. The index returns bare pairs; snapshot stores fill
in Namespace and CreatedAt when persisting them:

	a := storagemodels.Association{
	    Namespace: "default",
	    EntityID:  "file1",
	    LabelName: "Urgent",
	}

QueryParams:
Parameters for querying a datastore partition:

	params := &QueryParams{
	    KeyConditionExpression: "PK = :pk",
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":pk": &types.AttributeValueMemberS{Value: "TAGSET#default"},
	    },
	    Limit: aws.Int32(100),
	}
*/
package storagemodels
