package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ivolkov/salesoffice/internal/models"
)

func (s *Server) createProduct(c *gin.Context) {
	var req models.CreateProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := s.products.Create(c.Request.Context(), req)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	product, err := s.products.Get(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) listProducts(c *gin.Context) {
	skip, limit, ok := s.pageParams(c)
	if !ok {
		return
	}

	products, err := s.products.List(c.Request.Context(), skip, limit)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	var req models.CreateProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := s.products.Update(c.Request.Context(), id, req)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	if err := s.products.Delete(c.Request.Context(), id); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (s *Server) deleteAllProducts(c *gin.Context) {
	count, err := s.products.DeleteAll(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": count})
}

func (s *Server) generateProducts(c *gin.Context) {
	count, ok := s.countParam(c)
	if !ok {
		return
	}

	products, err := s.products.Generate(c.Request.Context(), count, s.gen)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, products)
}

func (s *Server) filterProducts(c *gin.Context) {
	manufacturer := c.Query("manufacturer")
	unit := c.Query("unit")

	products, err := s.products.Filter(c.Request.Context(), manufacturer, unit)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}
