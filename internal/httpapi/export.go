package httpapi

import (
	"bytes"
	"net/http"

	"marketstore-be/internal/export"
	"marketstore-be/internal/user"
	"marketstore-be/internal/utils"

	"github.com/gin-gonic/gin"
)

func (s *Server) productExportFilter(c *gin.Context) export.Filter {
	var f export.Filter
	if v := c.Query("category"); v != "" {
		if id, err := utils.ToUint(v); err == nil {
			f.CategoryID = &id
		}
	}
	if v := c.Query("supplier"); v != "" {
		if id, err := utils.ToUint(v); err == nil {
			f.SupplierID = &id
		}
	}
	return f
}

// orderExportFilter scopes the projection: admins may export any user's
// orders (or all of them), everyone else gets only their own.
func (s *Server) orderExportFilter(c *gin.Context) export.Filter {
	var f export.Filter

	ctx := c.Request.Context()
	if utils.GetUserRoleFromContext(ctx) == string(user.RoleAdmin) {
		if v := c.Query("user"); v != "" {
			if id, err := utils.ToUint(v); err == nil {
				f.UserID = &id
			}
		}
		return f
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	f.UserID = &userID
	return f
}

func (s *Server) exportProductsJSON(c *gin.Context) {
	rows, err := s.exports.Products(c.Request.Context(), s.productExportFilter(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) exportProductsCSV(c *gin.Context) {
	rows, err := s.exports.Products(c.Request.Context(), s.productExportFilter(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteProductsCSV(&buf, rows); err != nil {
		abortWithError(c, err)
		return
	}
	writeCSVResponse(c, "products.csv", buf.Bytes())
}

func (s *Server) exportOrdersJSON(c *gin.Context) {
	rows, err := s.exports.Orders(c.Request.Context(), s.orderExportFilter(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) exportOrdersCSV(c *gin.Context) {
	rows, err := s.exports.Orders(c.Request.Context(), s.orderExportFilter(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteOrdersCSV(&buf, rows); err != nil {
		abortWithError(c, err)
		return
	}
	writeCSVResponse(c, "orders.csv", buf.Bytes())
}

func (s *Server) exportSuppliersJSON(c *gin.Context) {
	rows, err := s.exports.Suppliers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) exportSuppliersCSV(c *gin.Context) {
	rows, err := s.exports.Suppliers(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSuppliersCSV(&buf, rows); err != nil {
		abortWithError(c, err)
		return
	}
	writeCSVResponse(c, "suppliers.csv", buf.Bytes())
}

func writeCSVResponse(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
