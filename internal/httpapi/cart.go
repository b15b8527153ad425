package httpapi

import (
	"net/http"

	"marketstore-be/internal/utils"

	"github.com/gin-gonic/gin"
)

func (s *Server) viewCart(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	view, err := s.carts.ViewCart(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type cartQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) addToCart(c *gin.Context) {
	productID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	// quantity defaults to one when the body is empty
	req := cartQuantityReq{Quantity: 1}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
	}

	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	item, err := s.carts.AddItem(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (s *Server) removeFromCart(c *gin.Context) {
	itemID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	if err := s.carts.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) updateCartItem(c *gin.Context) {
	itemID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req cartQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	if err := s.carts.UpdateQuantity(c.Request.Context(), userID, itemID, req.Quantity); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) checkout(c *gin.Context) {
	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	detail, err := s.orders.Checkout(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}
