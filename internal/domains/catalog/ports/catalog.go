package ports

import "github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/domain"

// Catalog resolves entry type codes into menu entries.
type Catalog interface {
	// Resolve reports the entry registered under typeID. Unknown or empty ids yield false.
	Resolve(typeID string) (domain.Entry, bool)
	List() []domain.Entry
}
