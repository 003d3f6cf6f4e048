package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/domain"
)

func TestResolve_KnownEntries(t *testing.T) {
	catalog := NewCatalog()

	cases := map[string]struct {
		description string
		ingredients []string
	}{
		"MARG": {"Margherita", []string{"Pomodoro", "Mozzarella", "Basilico"}},
		"BUFA": {"Bufalina", []string{"Pomodoro", "Pomodorini freschi", "Mozzarella di Bufala"}},
		"DIAV": {"Diavola", []string{"Pomodoro", "Mozzarella", "Salame piccante"}},
		"WURS": {"Wurstel", []string{"Pomodoro", "Mozzarella", "Wurstel"}},
	}
	for id, want := range cases {
		t.Run(id, func(t *testing.T) {
			entry, ok := catalog.Resolve(id)
			require.True(t, ok)
			require.Equal(t, id, entry.ID)
			require.Equal(t, want.description, entry.Description)
			require.Equal(t, want.ingredients, entry.Ingredients)
		})
	}
}

func TestResolve_UnknownOrEmpty(t *testing.T) {
	catalog := NewCatalog()

	for _, id := range []string{"", "PINE", "marg"} {
		_, ok := catalog.Resolve(id)
		require.False(t, ok, "id %q", id)
	}
}

func TestResolve_ReturnsCopies(t *testing.T) {
	catalog := NewCatalog()

	entry, ok := catalog.Resolve("MARG")
	require.True(t, ok)
	entry.Ingredients[0] = "Ananas"

	again, _ := catalog.Resolve("MARG")
	require.Equal(t, "Pomodoro", again.Ingredients[0])
}

func TestList_PreservesDeclarationOrder(t *testing.T) {
	catalog := NewCatalog()

	ids := make([]string, 0, 4)
	for _, entry := range catalog.List() {
		ids = append(ids, entry.ID)
	}
	require.Equal(t, []string{"MARG", "BUFA", "DIAV", "WURS"}, ids)
}

func TestNewCatalogWithEntries_LaterDuplicateWins(t *testing.T) {
	catalog := NewCatalogWithEntries([]domain.Entry{
		{ID: "MARG", Description: "old"},
		{ID: "MARG", Description: "new"},
	})

	entry, ok := catalog.Resolve("MARG")
	require.True(t, ok)
	require.Equal(t, "new", entry.Description)
	require.Len(t, catalog.List(), 1)
}
