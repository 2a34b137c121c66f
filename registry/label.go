/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

// Color is a categorical color token such as "bg-red-500".
type Color string

// Label is an interned tag. Only a LabelRegistry creates labels; everyone
// else holds shared, non-owning pointers to them.
type Label struct {
	name  string
	color Color
}

// Name returns the label's identity key.
func (l *Label) Name() string {
	return l.name
}

// Color returns the color resolved when the label was created.
func (l *Label) Color() Color {
	return l.color
}

func (l *Label) String() string {
	return l.name
}
