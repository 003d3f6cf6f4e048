package mapper

import catalogdomain "github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/domain"

// Entry is the transport shape of a menu entry.
type Entry struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
}

func FromDomainEntry(entry catalogdomain.Entry) Entry {
	ingredients := entry.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return Entry{ID: entry.ID, Description: entry.Description, Ingredients: ingredients}
}

func FromDomainEntries(entries []catalogdomain.Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, FromDomainEntry(entry))
	}
	return out
}
