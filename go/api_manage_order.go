package pizzaserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/adapters/http/mapper"
	ordersports "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/ports"
)

// ManageOrderAPI serves the kitchen-facing order endpoints.
type ManageOrderAPI struct {
	service ordersports.Service
}

// NewManageOrderAPI creates a ManageOrderAPI backed by the provided service.
func NewManageOrderAPI(service ordersports.Service) ManageOrderAPI {
	return ManageOrderAPI{service: service}
}

// Get /api/manage/order
// List orders waiting to be prepared
func (api *ManageOrderAPI) ListPendingOrders(c *gin.Context) {
	orders, err := api.service.ListPending(c.Request.Context())
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrders(orders))
}

// Get /api/manage/order/all
// List every order
func (api *ManageOrderAPI) ListAllOrders(c *gin.Context) {
	orders, err := api.service.ListAll(c.Request.Context())
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrders(orders))
}

// Get /api/manage/order/current
// Get the order being prepared, 204 when the kitchen is idle
func (api *ManageOrderAPI) GetCurrentOrder(c *gin.Context) {
	order, err := api.service.GetOrderInProgress(c.Request.Context())
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	if order == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrder(order))
}

// Put /api/manage/order/:orderId/start
// Start preparing an order
func (api *ManageOrderAPI) StartOrder(c *gin.Context) {
	if err := api.service.StartProcessing(c.Request.Context(), c.Param("orderId")); err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Put /api/manage/order/:orderId/completed
// Mark the order in progress as completed
func (api *ManageOrderAPI) CompleteOrder(c *gin.Context) {
	if err := api.service.CompleteProcessing(c.Request.Context(), c.Param("orderId")); err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Get /api/manage/order/:orderId/details
// Get the details of an order
func (api *ManageOrderAPI) GetOrderDetails(c *gin.Context) {
	respondOrderDetails(c, api.service, c.Param("orderId"))
}
