// Package router contains route registration for the HTTP transport.
package router

import (
	"courier/internal/domain/entity"
	"courier/internal/transport/http/middleware"
	"courier/internal/transport/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	VehicleHandler  *handler.VehicleHandler
	ProductHandler  *handler.ProductHandler
	DeliveryHandler *handler.DeliveryHandler
	CourierHandler  *handler.CourierHandler
	RouteHandler    *handler.RouteHandler

	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.Use(middleware.RequestID())
	e.Use(r.params.LoggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	// User management is restricted to administrators
	userGroup := e.Group("/users")
	userGroup.Use(auth.Authenticate)
	userGroup.Use(auth.RequireRole(entity.RoleAdmin))
	{
		userGroup.GET("", r.params.UserHandler.ListUsers)
		userGroup.POST("", r.params.UserHandler.CreateUser)
		userGroup.GET("/:id", r.params.UserHandler.GetUser)
		userGroup.PUT("/:id", r.params.UserHandler.UpdateUser)
		userGroup.DELETE("/:id", r.params.UserHandler.DeleteUser)
	}

	// Vehicles are readable by any authenticated user, mutable by admins
	vehicleGroup := e.Group("/vehicles")
	vehicleGroup.Use(auth.Authenticate)
	{
		vehicleGroup.GET("", r.params.VehicleHandler.ListVehicles)
		vehicleGroup.GET("/:id", r.params.VehicleHandler.GetVehicle)

		adminOnly := auth.RequireRole(entity.RoleAdmin)
		vehicleGroup.POST("", r.params.VehicleHandler.CreateVehicle, adminOnly)
		vehicleGroup.PUT("/:id", r.params.VehicleHandler.UpdateVehicle, adminOnly)
		vehicleGroup.DELETE("/:id", r.params.VehicleHandler.DeleteVehicle, adminOnly)
	}

	// Products follow the same access pattern as vehicles
	productGroup := e.Group("/products")
	productGroup.Use(auth.Authenticate)
	{
		productGroup.GET("", r.params.ProductHandler.ListProducts)
		productGroup.GET("/:id", r.params.ProductHandler.GetProduct)

		adminOnly := auth.RequireRole(entity.RoleAdmin)
		productGroup.POST("", r.params.ProductHandler.CreateProduct, adminOnly)
		productGroup.PUT("/:id", r.params.ProductHandler.UpdateProduct, adminOnly)
		productGroup.DELETE("/:id", r.params.ProductHandler.DeleteProduct, adminOnly)
	}

	// Delivery planning belongs to managers; a single delivery can be viewed
	// by any authenticated user
	deliveryGroup := e.Group("/deliveries")
	deliveryGroup.Use(auth.Authenticate)
	{
		deliveryGroup.GET("/:id", r.params.DeliveryHandler.GetDelivery)

		managerOnly := auth.RequireRole(entity.RoleManager)
		deliveryGroup.GET("", r.params.DeliveryHandler.ListDeliveries, managerOnly)
		deliveryGroup.POST("", r.params.DeliveryHandler.CreateDelivery, managerOnly)
		deliveryGroup.PUT("/:id", r.params.DeliveryHandler.UpdateDelivery, managerOnly)
		deliveryGroup.DELETE("/:id", r.params.DeliveryHandler.DeleteDelivery, managerOnly)
		deliveryGroup.POST("/generate", r.params.DeliveryHandler.GenerateDeliveries, managerOnly)
	}

	// Couriers see only their own schedule
	courierGroup := e.Group("/courier")
	courierGroup.Use(auth.Authenticate)
	courierGroup.Use(auth.RequireRole(entity.RoleCourier))
	{
		courierGroup.GET("/deliveries", r.params.CourierHandler.ListCourierDeliveries)
		courierGroup.GET("/deliveries/:id", r.params.CourierHandler.GetCourierDelivery)
	}

	// Route preview for any authenticated user
	routeGroup := e.Group("/routes")
	routeGroup.Use(auth.Authenticate)
	{
		routeGroup.POST("/calculate", r.params.RouteHandler.CalculateRoute)
	}
}
