package chore

// SortKey is one of the fixed orderings offered on the assignment list.
type SortKey int

const (
	SortDateAssignedDesc SortKey = iota
	SortDateAssigned
	SortChildName
	SortChoreName
	SortCompleted
)

// DefaultSort lists the most recently assigned first.
const DefaultSort = SortDateAssignedDesc

var sortKeyNames = [...]string{
	SortDateAssignedDesc: "-date_assigned",
	SortDateAssigned:     "date_assigned",
	SortChildName:        "child_name",
	SortChoreName:        "chore_name",
	SortCompleted:        "completed",
}

// ParseSortKey accepts the order_by query value. Anything outside the
// whitelist falls back to DefaultSort.
func ParseSortKey(s string) SortKey {
	for k, name := range sortKeyNames {
		if name == s {
			return SortKey(k)
		}
	}
	return DefaultSort
}

func (k SortKey) String() string {
	if k < 0 || int(k) >= len(sortKeyNames) {
		return sortKeyNames[DefaultSort]
	}
	return sortKeyNames[k]
}

// SortKeys returns every key in display order.
func SortKeys() []SortKey {
	return []SortKey{SortDateAssignedDesc, SortDateAssigned, SortChildName, SortChoreName, SortCompleted}
}
