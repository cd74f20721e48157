package form

// Option is a labelled choice of a select field.
type Option struct {
	Label string
	Value string
}

// selectItem is the list item used by the select field.
type selectItem struct {
	label string
	index int
}

func (i selectItem) FilterValue() string { return i.label }
