package nav

// Control entry labels appended to every menu. A real entry with the same
// name loses its slot to the control entry.
const (
	BackLabel = ".."
	ExitLabel = "Exit!"
)

// Options is an insertion-ordered mapping from display label to Selection.
type Options struct {
	labels   []string
	byLabel  map[string]Selection
	Warnings []string
}

// NewOptions returns an empty mapping.
func NewOptions() *Options {
	return &Options{byLabel: make(map[string]Selection)}
}

// Set inserts label. Re-inserting an existing label replaces its value
// and keeps its original position.
func (o *Options) Set(label string, sel Selection) {
	if _, ok := o.byLabel[label]; !ok {
		o.labels = append(o.labels, label)
	}
	o.byLabel[label] = sel
}

// Get returns the selection stored under label.
func (o *Options) Get(label string) (Selection, bool) {
	sel, ok := o.byLabel[label]
	return sel, ok
}

// Labels returns the labels in display order.
func (o *Options) Labels() []string {
	dup := make([]string, len(o.labels))
	copy(dup, o.labels)
	return dup
}

// Len returns the number of entries, control entries included.
func (o *Options) Len() int {
	return len(o.labels)
}

func (o *Options) warn(msg string) {
	o.Warnings = append(o.Warnings, msg)
}

func (o *Options) addControls() {
	o.Set(BackLabel, Back())
	o.Set(ExitLabel, Exit())
}
