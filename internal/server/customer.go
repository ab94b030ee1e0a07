package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ivolkov/salesoffice/internal/models"
)

func (s *Server) createCustomer(c *gin.Context) {
	var req models.CreateCustomer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customer, err := s.customers.Create(c.Request.Context(), req)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (s *Server) getCustomer(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	customer, err := s.customers.Get(c.Request.Context(), id)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (s *Server) listCustomers(c *gin.Context) {
	skip, limit, ok := s.pageParams(c)
	if !ok {
		return
	}

	customers, err := s.customers.List(c.Request.Context(), skip, limit)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (s *Server) updateCustomer(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	var req models.CreateCustomer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customer, err := s.customers.Update(c.Request.Context(), id, req)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (s *Server) deleteCustomer(c *gin.Context) {
	id, ok := s.idParam(c)
	if !ok {
		return
	}

	if err := s.customers.Delete(c.Request.Context(), id); err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (s *Server) deleteAllCustomers(c *gin.Context) {
	count, err := s.customers.DeleteAll(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": count})
}

func (s *Server) generateCustomers(c *gin.Context) {
	count, ok := s.countParam(c)
	if !ok {
		return
	}

	customers, err := s.customers.Generate(c.Request.Context(), count, s.gen)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customers)
}

func (s *Server) sortedCustomers(c *gin.Context) {
	field := c.DefaultQuery("field", models.SortByName)

	customers, err := s.customers.Sorted(c.Request.Context(), field)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}
