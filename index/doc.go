/*
Package index maintains the many-to-many relation between entities and labels.

TagIndex keeps two mirrored maps, entity → labels and label → entities, and
updates them together under one lock so that a pair is visible from both sides
or from neither. Every query and mutation is O(1) amortized in the size of the
relation; answering "which entities carry label X" never scans.

	labels := registry.NewLabelRegistry(nil)
	idx := index.New(labels)

	idx.Attach("file1", "Urgent")
	idx.Attach("file2", "Urgent")
	idx.EntitiesOf("Urgent") // [file1 file2]
	idx.LabelsOf("file1")    // [*Label{Urgent, bg-red-500}]

Unknown keys are not errors: they produce empty results, and detaching a pair
that was never attached does nothing.

By default the last Detach for a key leaves an empty set behind under that key.
WithPruneEmpty removes the key instead, which bounds memory for long-running
processes that churn through many short-lived entities.

The label → entities side is a back-reference only. It never owns labels, and
nothing in the index decides a label's lifetime in the registry.
*/
package index
