package memory

import (
	"github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/ports"
)

var _ ports.Catalog = (*Catalog)(nil)

// Catalog is the fixed, read-only menu loaded at process start.
type Catalog struct {
	entries []domain.Entry
	byID    map[string]int
}

// NewCatalog returns the standard menu.
func NewCatalog() *Catalog {
	return NewCatalogWithEntries(DefaultEntries())
}

// NewCatalogWithEntries builds a catalog over the given entries. Later duplicates win.
func NewCatalogWithEntries(entries []domain.Entry) *Catalog {
	c := &Catalog{
		entries: make([]domain.Entry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		if idx, ok := c.byID[entry.ID]; ok {
			c.entries[idx] = entry.Clone()
			continue
		}
		c.byID[entry.ID] = len(c.entries)
		c.entries = append(c.entries, entry.Clone())
	}
	return c
}

// DefaultEntries lists the pizzas the kitchen prepares.
func DefaultEntries() []domain.Entry {
	return []domain.Entry{
		{ID: "MARG", Description: "Margherita", Ingredients: []string{"Pomodoro", "Mozzarella", "Basilico"}},
		{ID: "BUFA", Description: "Bufalina", Ingredients: []string{"Pomodoro", "Pomodorini freschi", "Mozzarella di Bufala"}},
		{ID: "DIAV", Description: "Diavola", Ingredients: []string{"Pomodoro", "Mozzarella", "Salame piccante"}},
		{ID: "WURS", Description: "Wurstel", Ingredients: []string{"Pomodoro", "Mozzarella", "Wurstel"}},
	}
}

func (c *Catalog) Resolve(typeID string) (domain.Entry, bool) {
	if typeID == "" {
		return domain.Entry{}, false
	}
	idx, ok := c.byID[typeID]
	if !ok {
		return domain.Entry{}, false
	}
	return c.entries[idx].Clone(), true
}

func (c *Catalog) List() []domain.Entry {
	list := make([]domain.Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		list = append(list, entry.Clone())
	}
	return list
}
