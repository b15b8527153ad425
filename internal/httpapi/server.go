package httpapi

import (
	"errors"
	"net/http"

	"marketstore-be/internal/cart"
	"marketstore-be/internal/middleware"
	"marketstore-be/internal/order"
	"marketstore-be/internal/product"
	"marketstore-be/internal/review"
	"marketstore-be/internal/supplier"
	"marketstore-be/internal/user"

	"marketstore-be/internal/catalog"
	"marketstore-be/internal/export"

	"github.com/gin-gonic/gin"
)

type Server struct {
	engine *gin.Engine

	users     user.Service
	products  product.Service
	reviews   review.Service
	carts     cart.Service
	orders    order.Service
	suppliers supplier.Service
	catalog   catalog.Service
	exports   export.Service
}

type Services struct {
	Users     user.Service
	Products  product.Service
	Reviews   review.Service
	Carts     cart.Service
	Orders    order.Service
	Suppliers supplier.Service
	Catalog   catalog.Service
	Exports   export.Service
}

func NewServer(svcs Services) *Server {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Identity(),
		middleware.RateLimit(),
		middleware.RequestLogger(),
	)

	s := &Server{
		engine:    r,
		users:     svcs.Users,
		products:  svcs.Products,
		reviews:   svcs.Reviews,
		carts:     svcs.Carts,
		orders:    svcs.Orders,
		suppliers: svcs.Suppliers,
		catalog:   svcs.Catalog,
		exports:   svcs.Exports,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// public catalog
	s.engine.GET("/", s.listProducts)
	s.engine.GET("/product/:id", s.productDetail)
	s.engine.GET("/categories", s.listCategories)
	s.engine.GET("/warehouses", s.listWarehouses)
	s.engine.GET("/suppliers", s.listSuppliers)
	s.engine.GET("/supplier/:id", s.supplierProducts)

	// accounts
	s.engine.POST("/register", s.register)
	s.engine.POST("/login", s.login)
	s.engine.POST("/logout", s.logout)

	auth := s.engine.Group("/", middleware.RequireAuth())
	{
		auth.POST("/product/:id", s.submitReview)
		auth.POST("/product/create", s.createProduct)
		auth.POST("/categories", s.addCategory)
		auth.POST("/warehouses", s.addWarehouse)
		auth.POST("/suppliers", s.addSupplier)

		auth.GET("/cart", s.viewCart)
		auth.POST("/cart/add/:id", s.addToCart)
		auth.POST("/cart/remove/:id", s.removeFromCart)
		auth.POST("/cart/update/:id", s.updateCartItem)
		auth.GET("/cart/checkout", s.checkout)
		auth.POST("/cart/checkout", s.checkout)

		auth.GET("/orders", s.listOrders)
		auth.GET("/orders/:id", s.orderDetail)

		auth.GET("/export/products.json", s.exportProductsJSON)
		auth.GET("/export/products.csv", s.exportProductsCSV)
		auth.GET("/export/orders.json", s.exportOrdersJSON)
		auth.GET("/export/orders.csv", s.exportOrdersCSV)
		auth.GET("/export/suppliers.json", s.exportSuppliersJSON)
		auth.GET("/export/suppliers.csv", s.exportSuppliersCSV)
	}
}

func mapErrorToStatus(err error) int {
	var fieldErr *user.FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, review.ErrRatingOutOfRange),
		errors.Is(err, review.ErrProductRequired),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidQuantity),
		errors.Is(err, product.ErrNameRequired):
		return http.StatusBadRequest

	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, cart.ErrCartItemNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, supplier.ErrSupplierNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, user.ErrEmailExists),
		errors.Is(err, user.ErrCompanyExists),
		errors.Is(err, supplier.ErrCompanyExists):
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		// do not leak internals to the client
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
