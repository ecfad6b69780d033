package directory

import "strings"

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type SortField string

const (
	SortName      SortField = "name"
	SortEmail     SortField = "email"
	SortAddress   SortField = "address"
	SortRole      SortField = "role"
	SortAvgRating SortField = "avg_rating"
)

// Sort is an ordering request that has already passed a Whitelist.
// The zero Sort means "no ordering".
type Sort struct {
	Field     SortField
	Direction Direction
}

func (s Sort) IsZero() bool {
	return s.Field == ""
}

func (s Sort) Desc() bool {
	return s.Direction == Desc
}

// Whitelist maps the sort fields a view accepts to the column each one
// orders by. Columns are fixed here and never derived from request text.
type Whitelist map[SortField]string

var (
	StoreSorts = Whitelist{
		SortName:      "stores.name",
		SortEmail:     "stores.email",
		SortAvgRating: "avg_rating",
	}
	UserStoreSorts = Whitelist{
		SortName:      "stores.name",
		SortAddress:   "stores.address",
		SortAvgRating: "avg_rating",
	}
	AccountSorts = Whitelist{
		SortName:  "accounts.name",
		SortEmail: "accounts.email",
		SortRole:  "accounts.role",
	}
)

// Parse reads a "field:direction" request. Unknown fields, unknown
// directions and malformed input all give the zero Sort.
func (w Whitelist) Parse(raw string) Sort {
	field, dir, ok := strings.Cut(raw, ":")
	if !ok {
		return Sort{}
	}
	f := SortField(field)
	if _, known := w[f]; !known {
		return Sort{}
	}
	d := Direction(dir)
	if d != Asc && d != Desc {
		return Sort{}
	}
	return Sort{Field: f, Direction: d}
}

// Column returns the column for s, or false when s is zero or was not
// accepted by this whitelist.
func (w Whitelist) Column(s Sort) (string, bool) {
	if s.IsZero() || (s.Direction != Asc && s.Direction != Desc) {
		return "", false
	}
	col, ok := w[s.Field]
	return col, ok
}
