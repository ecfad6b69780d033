package directory

import (
	"strings"

	"github.com/BruksfildServices01/store-ratings/internal/models"
)

type StoreFilter struct {
	Name  string
	Email string
	Sort  Sort
}

type UserStoreFilter struct {
	Name    string
	Address string
	Sort    Sort
}

type AccountFilter struct {
	Name  string
	Email string
	Role  models.Role
	Sort  Sort
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns caller text into a LIKE pattern that matches the
// text literally anywhere in the column.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
