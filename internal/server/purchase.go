package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ivolkov/salesoffice/internal/models"
)

func (s *Server) createPurchase(c *gin.Context) {
	var req models.CreatePurchase
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	purchase, err := s.purchases.Create(c.Request.Context(), req)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, purchase)
}

func (s *Server) getPurchase(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	purchase, err := s.purchases.Get(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchase)
}

func (s *Server) listPurchases(c *gin.Context) {
	skip, limit, ok := s.pageParams(c)
	if !ok {
		return
	}

	purchases, err := s.purchases.List(c.Request.Context(), skip, limit)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchases)
}

func (s *Server) updatePurchase(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	var req models.CreatePurchase
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	purchase, err := s.purchases.Update(c.Request.Context(), id, req)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchase)
}

func (s *Server) deletePurchase(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	if err := s.purchases.Delete(c.Request.Context(), id); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (s *Server) deleteAllPurchases(c *gin.Context) {
	count, err := s.purchases.DeleteAll(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": count})
}

func (s *Server) generatePurchases(c *gin.Context) {
	count, ok := s.countParam(c)
	if !ok {
		return
	}

	purchases, err := s.purchases.Generate(c.Request.Context(), count, s.gen)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, purchases)
}

func (s *Server) purchaseDetails(c *gin.Context) {
	details, err := s.purchases.Details(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (s *Server) groupByProduct(c *gin.Context) {
	totals, err := s.purchases.GroupByProduct(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

type updatePriceRequest struct {
	PricePerUnit float64 `json:"price_per_unit"`
}

func (s *Server) updatePurchasePrice(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	var req updatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := s.purchases.UpdatePrice(c.Request.Context(), id, req.PricePerUnit)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "updated": updated})
}
