package pizzaserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	return router
}

// DefaultHandleFunc answers routes whose API was not wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

type ApiHandleFunctions struct {
	// Routes for the CatalogAPI part of the API
	CatalogAPI CatalogAPI
	// Routes for the CustomerOrderAPI part of the API
	CustomerOrderAPI CustomerOrderAPI
	// Routes for the ManageOrderAPI part of the API
	ManageOrderAPI ManageOrderAPI
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"Health",
			http.MethodGet,
			"/health",
			Health,
		},
		{
			"ListCatalog",
			http.MethodGet,
			"/api/catalog",
			handleFunctions.CatalogAPI.ListCatalog,
		},
		{
			"GetCatalogEntry",
			http.MethodGet,
			"/api/catalog/:typeId",
			handleFunctions.CatalogAPI.GetCatalogEntry,
		},
		{
			"CreateOrder",
			http.MethodPost,
			"/api/customer/order",
			handleFunctions.CustomerOrderAPI.CreateOrder,
		},
		{
			"GetOrderStatus",
			http.MethodGet,
			"/api/customer/order/:orderId/status",
			handleFunctions.CustomerOrderAPI.GetOrderStatus,
		},
		{
			"GetCustomerOrderDetails",
			http.MethodGet,
			"/api/customer/order/:orderId/details",
			handleFunctions.CustomerOrderAPI.GetOrderDetails,
		},
		{
			"ListPendingOrders",
			http.MethodGet,
			"/api/manage/order",
			handleFunctions.ManageOrderAPI.ListPendingOrders,
		},
		{
			"ListAllOrders",
			http.MethodGet,
			"/api/manage/order/all",
			handleFunctions.ManageOrderAPI.ListAllOrders,
		},
		{
			"GetCurrentOrder",
			http.MethodGet,
			"/api/manage/order/current",
			handleFunctions.ManageOrderAPI.GetCurrentOrder,
		},
		{
			"StartOrder",
			http.MethodPut,
			"/api/manage/order/:orderId/start",
			handleFunctions.ManageOrderAPI.StartOrder,
		},
		{
			"CompleteOrder",
			http.MethodPut,
			"/api/manage/order/:orderId/completed",
			handleFunctions.ManageOrderAPI.CompleteOrder,
		},
		{
			"GetManagedOrderDetails",
			http.MethodGet,
			"/api/manage/order/:orderId/details",
			handleFunctions.ManageOrderAPI.GetOrderDetails,
		},
	}
}

// Get /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
