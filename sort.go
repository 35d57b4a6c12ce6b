package asynclist

// SortDirection is the direction of a [SortDescriptor].
type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

// SortDescriptor identifies a column to order by and a direction. What a
// "column" means is up to the load function or [SortFunc]; the list only
// carries the descriptor.
type SortDescriptor struct {
	Column    string
	Direction SortDirection
}

// Reversed returns a copy of d with the direction flipped. An empty
// direction is treated as ascending.
func (d SortDescriptor) Reversed() SortDescriptor {
	if d.Direction == Descending {
		d.Direction = Ascending
	} else {
		d.Direction = Descending
	}
	return d
}
