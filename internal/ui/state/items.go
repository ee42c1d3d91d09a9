package state

import "strings"

// Item is one menu row. ID is the label handed back to the caller when
// the row is chosen; Label is the single line shown in the list.
type Item struct {
	ID    string
	Label string
}

// Multiline reports whether the item's full text spans several lines.
func (i Item) Multiline() bool {
	return strings.Contains(i.ID, "\n")
}

// Lines splits the item's full text into display lines.
func (i Item) Lines() []string {
	return strings.Split(i.ID, "\n")
}

// ItemsFromLabels builds rows for labels, using each label's first line as
// the visible text.
func ItemsFromLabels(labels []string) []Item {
	items := make([]Item, len(labels))
	for i, label := range labels {
		display := label
		if idx := strings.IndexByte(label, '\n'); idx >= 0 {
			display = label[:idx]
		}
		items[i] = Item{ID: label, Label: display}
	}
	return items
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
