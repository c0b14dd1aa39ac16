package form

// selectItem is the list item used by select and multi-select fields.
// index points into the field's options; -1 marks the "no selection" row.
type selectItem struct {
	label string
	index int
}

func (i selectItem) FilterValue() string { return i.label }

func (i selectItem) none() bool { return i.index < 0 }
