package directory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhitelist_Parse(t *testing.T) {
	require.Equal(t, Sort{Field: SortName, Direction: Asc}, StoreSorts.Parse("name:asc"))
	require.Equal(t, Sort{Field: SortAvgRating, Direction: Desc}, StoreSorts.Parse("avg_rating:desc"))
	require.Equal(t, Sort{Field: SortRole, Direction: Desc}, AccountSorts.Parse("role:desc"))
}

func TestWhitelist_ParseIgnoresAnythingElse(t *testing.T) {
	inputs := []string{
		"",
		"name",
		"password:asc",
		"name:sideways",
		"name:ASC",
		"role:asc",
		"name:asc; DROP TABLE stores",
		"stores.name:asc",
	}
	for _, in := range inputs {
		require.Truef(t, StoreSorts.Parse(in).IsZero(), "input %q", in)
	}

	require.True(t, AccountSorts.Parse("avg_rating:asc").IsZero())
	require.True(t, UserStoreSorts.Parse("email:asc").IsZero())
}

func TestWhitelist_Column(t *testing.T) {
	col, ok := StoreSorts.Column(Sort{Field: SortEmail, Direction: Asc})
	require.True(t, ok)
	require.Equal(t, "stores.email", col)

	_, ok = StoreSorts.Column(Sort{})
	require.False(t, ok)

	_, ok = StoreSorts.Column(Sort{Field: "password", Direction: Asc})
	require.False(t, ok)

	_, ok = StoreSorts.Column(Sort{Field: SortName, Direction: "sideways"})
	require.False(t, ok)
}

func TestContainsPattern(t *testing.T) {
	require.Equal(t, "%coffee%", ContainsPattern("coffee"))
	require.Equal(t, `%100\%\_real\\%`, ContainsPattern(`100%_real\`))
}
