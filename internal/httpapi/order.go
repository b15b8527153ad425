package httpapi

import (
	"net/http"

	"marketstore-be/internal/utils"

	"github.com/gin-gonic/gin"
)

func (s *Server) listOrders(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	orders, err := s.orders.ListOrders(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (s *Server) orderDetail(c *gin.Context) {
	orderID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	detail, err := s.orders.GetOrderDetail(c.Request.Context(), userID, orderID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
