// models.go

package main

import "go.mongodb.org/mongo-driver/bson/primitive"

type Food struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodName      string             `bson:"foodName" json:"foodName"`
	FoodImage     string             `bson:"foodImage" json:"foodImage"`
	FoodCategory  string             `bson:"foodCategory" json:"foodCategory"`
	Price         float64            `bson:"price" json:"price"`
	FoodOrigin    string             `bson:"foodOrigin" json:"foodOrigin"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Ingredients   []string           `bson:"ingredients" json:"ingredients"`
	Making        string             `bson:"making" json:"making"`
	Description   string             `bson:"description" json:"description"`
	PurchaseCount int                `bson:"purchaseCount" json:"purchaseCount"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
}

// Purchase metadata is whatever the client sent at checkout; none of it
// is validated against the referenced food.
type Purchase struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FoodID   string             `bson:"foodId" json:"foodId"`
	FoodName string             `bson:"foodName" json:"foodName"`
	Price    float64            `bson:"price" json:"price"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Email    string             `bson:"email" json:"email"`
	Date     string             `bson:"date" json:"date"`
}

type GalleryItem struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email   string             `bson:"email,omitempty" json:"email,omitempty"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Image   string             `bson:"image" json:"image"`
	Caption string             `bson:"caption,omitempty" json:"caption,omitempty"`
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"password,omitempty"`
}
