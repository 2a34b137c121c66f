/*
Package tagstore tags entities with shared, interned labels.

The library has two moving parts behind one facade:
  - registry.LabelRegistry interns labels so that each distinct name maps to
    exactly one *registry.Label, colored once from a closed color table
  - index.TagIndex keeps the entity⇄label relation in two mirrored maps so
    that both directions answer in constant time

Service wires them together. Construct one at startup and pass it to whatever
needs it; there is no package-level instance.

Basic Usage:

	svc := tagstore.NewService()

	svc.Attach("file1", "Urgent")
	svc.Attach("file2", "Urgent")

	svc.EntitiesOf("Urgent") // [file1 file2]
	svc.LabelsOf("file1")    // [Urgent (bg-red-500)]

	svc.Detach("file1", "Urgent")
	svc.LabelsOf("file1")    // []

The core validates nothing and never fails. Identifiers coming from users or
other systems should pass through the validate package first. Durable storage
lives in the snapshot and datastore packages, which capture the pairs and the
color table and restore them by replaying Attach.

For more information, see the documentation at https://github.com/suparena/tagstore
*/
package tagstore
