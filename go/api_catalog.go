package pizzaserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogmapper "github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/ports"
	apierrors "github.com/Apurer/go-gin-pizza-api/internal/shared/errors"
)

// CatalogAPI exposes the menu.
type CatalogAPI struct {
	catalog catalogports.Catalog
}

// NewCatalogAPI creates a CatalogAPI backed by the provided catalog.
func NewCatalogAPI(catalog catalogports.Catalog) CatalogAPI {
	return CatalogAPI{catalog: catalog}
}

// Get /api/catalog
// List the available pizzas
func (api *CatalogAPI) ListCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, catalogmapper.FromDomainEntries(api.catalog.List()))
}

// Get /api/catalog/:typeId
// Find a pizza by type code
func (api *CatalogAPI) GetCatalogEntry(c *gin.Context) {
	typeID := c.Param("typeId")
	entry, ok := api.catalog.Resolve(typeID)
	if !ok {
		respondProblem(c, apierrors.NewNotFoundProblem("entry type", typeID).WithCode(CodeEntryTypeNotFound))
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainEntry(entry))
}
