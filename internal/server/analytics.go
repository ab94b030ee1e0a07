package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) customerPurchases(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	purchases, err := s.purchases.ByCustomer(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchases)
}

func (s *Server) productSales(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	sales, err := s.purchases.ProductSales(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sales)
}
