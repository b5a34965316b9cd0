// purchases.go

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// listPurchases returns the caller's own purchase history. The email
// query param must match the authenticated identity.
func (s *Server) listPurchases(c *gin.Context) {
	email := c.Query("email")
	if c.GetString("email") != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	filter := bson.M{}
	if email != "" {
		filter = bson.M{"email": email}
	}
	purchases, err := s.purchases.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// createPurchase bumps the referenced food's purchase counter, then
// records the purchase. The two writes are sequential, not transactional:
// if the insert fails the counter stays incremented.
func (s *Server) createPurchase(c *gin.Context) {
	var purchase Purchase
	if err := c.ShouldBindJSON(&purchase); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	foodID, err := primitive.ObjectIDFromHex(purchase.FoodID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	if err := s.foods.IncrementPurchaseCount(c.Request.Context(), foodID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	res, err := s.purchases.Insert(c.Request.Context(), purchase)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) deletePurchase(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	res, err := s.purchases.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
