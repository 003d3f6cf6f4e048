package pizzaserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/adapters/http/mapper"
	ordersports "github.com/Apurer/go-gin-pizza-api/internal/domains/orders/ports"
)

// CustomerOrderAPI serves the customer-facing order endpoints.
type CustomerOrderAPI struct {
	service ordersports.Service
}

// NewCustomerOrderAPI creates a CustomerOrderAPI backed by the provided service.
func NewCustomerOrderAPI(service ordersports.Service) CustomerOrderAPI {
	return CustomerOrderAPI{service: service}
}

// Post /api/customer/order
// Place a new order
func (api *CustomerOrderAPI) CreateOrder(c *gin.Context) {
	var payload ordermapper.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindingError(c, err)
		return
	}
	id, err := api.service.CreateOrder(c.Request.Context(), ordermapper.ToCreateOrderInput(payload))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ordermapper.CreateOrderResponse{OrderID: id})
}

// Get /api/customer/order/:orderId/status
// Get the status of an order
func (api *CustomerOrderAPI) GetOrderStatus(c *gin.Context) {
	status, err := api.service.GetStatus(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.OrderStatus{Status: status.String()})
}

// Get /api/customer/order/:orderId/details
// Get the details of an order
func (api *CustomerOrderAPI) GetOrderDetails(c *gin.Context) {
	respondOrderDetails(c, api.service, c.Param("orderId"))
}

func respondOrderDetails(c *gin.Context, service ordersports.Service, id string) {
	order, err := service.GetDetails(c.Request.Context(), id)
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrder(order))
}
