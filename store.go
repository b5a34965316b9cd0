// store.go

package main

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The store interfaces hand back the driver's raw ack types so handlers
// can serialize them to the client unchanged.

type FoodStore interface {
	List(ctx context.Context, filter bson.M) ([]Food, error)
	Get(ctx context.Context, id primitive.ObjectID) (*Food, error)
	Insert(ctx context.Context, food Food) (*mongo.InsertOneResult, error)
	Upsert(ctx context.Context, id primitive.ObjectID, food Food) (*mongo.UpdateResult, error)
	SearchByName(ctx context.Context, query string) ([]Food, error)
	IncrementPurchaseCount(ctx context.Context, id primitive.ObjectID) error
}

type PurchaseStore interface {
	List(ctx context.Context, filter bson.M) ([]Purchase, error)
	Insert(ctx context.Context, purchase Purchase) (*mongo.InsertOneResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type GalleryStore interface {
	List(ctx context.Context) ([]GalleryItem, error)
	Get(ctx context.Context, id primitive.ObjectID) (*GalleryItem, error)
	Insert(ctx context.Context, item GalleryItem) (*mongo.InsertOneResult, error)
}

type UserStore interface {
	Insert(ctx context.Context, user User) (*mongo.InsertOneResult, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// ----- Mongo implementations -----

type mongoFoodStore struct {
	col *mongo.Collection
}

func newMongoFoodStore(db *mongo.Database) *mongoFoodStore {
	return &mongoFoodStore{col: db.Collection("food")}
}

func (s *mongoFoodStore) List(ctx context.Context, filter bson.M) ([]Food, error) {
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var foods []Food
	if err := cur.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *mongoFoodStore) Get(ctx context.Context, id primitive.ObjectID) (*Food, error) {
	var food Food
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *mongoFoodStore) Insert(ctx context.Context, food Food) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, food)
}

func (s *mongoFoodStore) Upsert(ctx context.Context, id primitive.ObjectID, food Food) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"foodName":     food.FoodName,
		"foodImage":    food.FoodImage,
		"foodCategory": food.FoodCategory,
		"price":        food.Price,
		"foodOrigin":   food.FoodOrigin,
		"quantity":     food.Quantity,
		"ingredients":  food.Ingredients,
		"making":       food.Making,
		"description":  food.Description,
	}}
	return s.col.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
}

func (s *mongoFoodStore) SearchByName(ctx context.Context, query string) ([]Food, error) {
	filter := bson.M{"foodName": primitive.Regex{Pattern: query, Options: "i"}}
	return s.List(ctx, filter)
}

func (s *mongoFoodStore) IncrementPurchaseCount(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"purchaseCount": 1}})
	return err
}

type mongoPurchaseStore struct {
	col *mongo.Collection
}

func newMongoPurchaseStore(db *mongo.Database) *mongoPurchaseStore {
	return &mongoPurchaseStore{col: db.Collection("purchaseFood")}
}

func (s *mongoPurchaseStore) List(ctx context.Context, filter bson.M) ([]Purchase, error) {
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var purchases []Purchase
	if err := cur.All(ctx, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

func (s *mongoPurchaseStore) Insert(ctx context.Context, purchase Purchase) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, purchase)
}

func (s *mongoPurchaseStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.col.DeleteOne(ctx, bson.M{"_id": id})
}

type mongoGalleryStore struct {
	col *mongo.Collection
}

func newMongoGalleryStore(db *mongo.Database) *mongoGalleryStore {
	return &mongoGalleryStore{col: db.Collection("gallery")}
}

func (s *mongoGalleryStore) List(ctx context.Context) ([]GalleryItem, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var items []GalleryItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *mongoGalleryStore) Get(ctx context.Context, id primitive.ObjectID) (*GalleryItem, error) {
	var item GalleryItem
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *mongoGalleryStore) Insert(ctx context.Context, item GalleryItem) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, item)
}

type mongoUserStore struct {
	col *mongo.Collection
}

func newMongoUserStore(db *mongo.Database) *mongoUserStore {
	return &mongoUserStore{col: db.Collection("users")}
}

func (s *mongoUserStore) Insert(ctx context.Context, user User) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, user)
}

func (s *mongoUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
