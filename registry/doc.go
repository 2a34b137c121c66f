/*
Package registry interns labels for tagstore.

A LabelRegistry hands out exactly one *Label per distinct name for its whole
lifetime. Callers compare labels by pointer and share them freely; a Label is
immutable once created, so reading it needs no locking.

Label Registry:

	labels := registry.NewLabelRegistry(registry.DefaultColorTable())

	urgent := labels.GetOrCreate("Urgent")   // color bg-red-500
	again := labels.GetOrCreate("Urgent")    // urgent == again
	other := labels.GetOrCreate("Mystery")   // color is the default, bg-gray-500

Color Table:
Colors come from a closed ColorTable: a category name → color token mapping
plus one default token returned for every name the table does not list. A
label's color is resolved once, when the label is created. Tables can be
loaded from YAML:

	default: bg-gray-500
	colors:
	  Urgent: bg-red-500
	  Work: bg-blue-500

Index Map Registry:
Associates Go types with DynamoDB key patterns for the ddb datastore:

	registry.RegisterIndexMap[storagemodels.Association](map[string]string{
	    "PK": "TAGSET#{Namespace}",
	    "SK": "ENTITY#{EntityID}#LABEL#{LabelName}",
	})

The registry never evicts labels. The set of distinct label names is assumed
small and sharing one instance per name is the whole point.
*/
package registry
