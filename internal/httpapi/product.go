package httpapi

import (
	"net/http"

	"marketstore-be/internal/product"
	"marketstore-be/internal/review"
	"marketstore-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (s *Server) listProducts(c *gin.Context) {
	var filter product.ListFilter
	if id, err := utils.ToUint(c.Query("category")); err == nil && c.Query("category") != "" {
		filter.CategoryID = &id
	}
	if id, err := utils.ToUint(c.Query("supplier")); err == nil && c.Query("supplier") != "" {
		filter.SupplierID = &id
	}

	products, err := s.products.List(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (s *Server) productDetail(c *gin.Context) {
	id, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	p, err := s.products.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	reviews, err := s.reviews.ListByProduct(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := gin.H{
		"product": p,
		"reviews": reviews,
	}

	if avg, ok, err := s.reviews.AverageRating(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	} else if ok {
		resp["average_rating"] = avg
	} else {
		resp["average_rating"] = nil
	}

	c.JSON(http.StatusOK, resp)
}

type createProductReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  *uint  `json:"category_id"`
	SupplierID  *uint  `json:"supplier_id"`
	WarehouseID *uint  `json:"warehouse_id"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
}

func (s *Server) createProduct(c *gin.Context) {
	if !requireSupplier(c) {
		return
	}

	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}

	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	p, err := s.products.Create(c.Request.Context(), product.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
		WarehouseID: req.WarehouseID,
		Price:       price,
		Quantity:    req.Quantity,
		UserID:      userID,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

type submitReviewReq struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

func (s *Server) submitReview(c *gin.Context) {
	productID, err := utils.ToUint(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req submitReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	// the review must reference an existing product
	if _, err := s.products.GetByID(c.Request.Context(), productID); err != nil {
		abortWithError(c, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(c.Request.Context())

	rev, err := s.reviews.Submit(c.Request.Context(), review.SubmitParams{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Text:      req.Text,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}
