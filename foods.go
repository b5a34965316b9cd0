// foods.go

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (s *Server) listFoods(c *gin.Context) {
	filter := bson.M{}
	if email := c.Query("email"); email != "" {
		filter = bson.M{"email": email}
	}
	foods, err := s.foods.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// myFoods lists foods owned by the caller. The email query param must
// match the authenticated identity.
func (s *Server) myFoods(c *gin.Context) {
	email := c.Query("email")
	if c.GetString("email") != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	filter := bson.M{}
	if email != "" {
		filter = bson.M{"email": email}
	}
	foods, err := s.foods.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (s *Server) getFood(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	food, err := s.foods.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// missing record renders as a JSON null body
	c.JSON(http.StatusOK, food)
}

func (s *Server) createFood(c *gin.Context) {
	var food Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := s.foods.Insert(c.Request.Context(), food)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// updateFood replaces the food's field set, inserting a new record when
// the id does not match anything.
func (s *Server) updateFood(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	var food Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := s.foods.Upsert(c.Request.Context(), id, food)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) searchFoods(c *gin.Context) {
	foods, err := s.foods.SearchByName(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}
