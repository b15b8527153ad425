package httpapi

import (
	"net/http"

	"marketstore-be/internal/product"
	"marketstore-be/internal/supplier"
	"marketstore-be/internal/user"
	"marketstore-be/internal/utils"

	"github.com/gin-gonic/gin"
)

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.catalog.Categories(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type addLabeledReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

func (s *Server) addCategory(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req addLabeledReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	cat, err := s.catalog.AddCategory(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (s *Server) listWarehouses(c *gin.Context) {
	warehouses, err := s.catalog.Warehouses(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"warehouses": warehouses})
}

func (s *Server) addWarehouse(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req addLabeledReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	w, err := s.catalog.AddWarehouse(c.Request.Context(), req.Name, req.Address)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (s *Server) listSuppliers(c *gin.Context) {
	suppliers, err := s.suppliers.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

type addSupplierReq struct {
	CompanyName string `json:"company_name"`
	INN         string `json:"inn"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

func (s *Server) addSupplier(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req addSupplierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	created, err := s.suppliers.Create(c.Request.Context(), supplier.Supplier{
		CompanyName: req.CompanyName,
		INN:         req.INN,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// supplierProducts lists a supplier together with its products.
func (s *Server) supplierProducts(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	sup, err := s.suppliers.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	products, err := s.products.List(c.Request.Context(), product.ListFilter{SupplierID: &id})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"supplier": sup,
		"products": products,
	})
}

func requireAdmin(c *gin.Context) bool {
	if utils.GetUserRoleFromContext(c.Request.Context()) != string(user.RoleAdmin) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return false
	}
	return true
}

// requireSupplier gates supplier operations; admins pass too.
func requireSupplier(c *gin.Context) bool {
	switch utils.GetUserRoleFromContext(c.Request.Context()) {
	case string(user.RoleSupplier), string(user.RoleAdmin):
		return true
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	return false
}
