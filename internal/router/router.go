package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"elective/internal/accounts"
	"elective/internal/auth"
	"elective/internal/handler"
	"elective/internal/middleware"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth      *handler.AuthHandler
	Address   *handler.AddressHandler
	Customer  *handler.CustomerHandler
	Service   *handler.ServiceHandler
	Order     *handler.OrderHandler
	OrderItem *handler.OrderItemHandler
	Payment   *handler.PaymentHandler
}

// Register wires routes and middleware. The auth and role gates are composed
// once here, in front of every mutating resource route. List routes stay
// public.
func Register(e *echo.Echo, tokens *auth.JWTService, store accounts.Store, h Handlers) {
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("elective"))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/register", h.Auth.Register)
	e.POST("/login", h.Auth.Login)

	// Every mutation requires a valid token whose account currently holds
	// the staff or admin role.
	protected := []echo.MiddlewareFunc{
		middleware.Auth(tokens),
		middleware.RequireRole(store, "staff", "admin"),
	}

	e.GET("/addresses", h.Address.List)
	e.POST("/addresses", h.Address.Create, protected...)
	e.PUT("/addresses/:id", h.Address.Update, protected...)
	e.DELETE("/addresses/:id", h.Address.Delete, protected...)

	e.GET("/customers", h.Customer.List)
	e.POST("/customers", h.Customer.Create, protected...)
	e.PUT("/customers/:id", h.Customer.Update, protected...)
	e.DELETE("/customers/:id", h.Customer.Delete, protected...)

	e.GET("/services", h.Service.List)
	e.POST("/services", h.Service.Create, protected...)
	e.PUT("/services/:id", h.Service.Update, protected...)
	e.DELETE("/services/:id", h.Service.Delete, protected...)

	e.GET("/orders", h.Order.List)
	e.POST("/orders", h.Order.Create, protected...)
	e.PUT("/orders/:id", h.Order.Update, protected...)
	e.DELETE("/orders/:id", h.Order.Delete, protected...)

	e.GET("/order_items", h.OrderItem.List)
	e.POST("/order_items", h.OrderItem.Create, protected...)
	e.PUT("/order_items/:id", h.OrderItem.Update, protected...)
	e.DELETE("/order_items/:id", h.OrderItem.Delete, protected...)

	e.GET("/payments", h.Payment.List)
	e.POST("/payments", h.Payment.Create, protected...)
	e.PUT("/payments/:id", h.Payment.Update, protected...)
	e.DELETE("/payments/:id", h.Payment.Delete, protected...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
