/*
Package snapshot makes a tagstore.Service durable.

The tagging core keeps nothing on disk. A Snapshot records what is needed to
rebuild it: the color table, the interned label names and every
(entity, label) pair. Restore builds a fresh Service from a snapshot by
interning the labels and replaying Attach, after validating every key.

Files:

	snap := snapshot.Capture(svc)
	err := snapshot.SaveFile("tags.yaml", snap)

	snap, err := snapshot.LoadFile("tags.yaml")
	svc, err := snapshot.Restore(snap)

Datastores:
Store writes pairs as storagemodels.Association records through any
datastore.DataStore, such as the DynamoDB one, under a namespace:

	store := snapshot.NewStore(ddbStore, "default", ddb.NamespaceQuery("default"))
	err := store.Save(ctx, snapshot.Capture(svc))
	pairs, err := store.Load(ctx)
*/
package snapshot
