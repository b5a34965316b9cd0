// main.go

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Server struct {
	cfg       Config
	foods     FoodStore
	purchases PurchaseStore
	gallery   GalleryStore
	users     UserStore
}

func NewServer(cfg Config, foods FoodStore, purchases PurchaseStore, gallery GalleryStore, users UserStore) *Server {
	return &Server{
		cfg:       cfg,
		foods:     foods,
		purchases: purchases,
		gallery:   gallery,
		users:     users,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "flavor fusion is running")
	})

	// Auth
	r.POST("/jwt", s.issueJWT)
	r.POST("/logout", s.logout)
	r.POST("/register", s.register)
	r.POST("/login", s.login)

	// Purchases
	r.GET("/purchaseFood", s.verifyToken, s.listPurchases)
	r.POST("/purchaseFood", s.createPurchase)
	r.DELETE("/purchaseFood/:id", s.deletePurchase)

	// Foods
	r.GET("/foods", s.listFoods)
	r.GET("/myFoods", s.verifyToken, s.myFoods)
	r.GET("/foods/:id", s.getFood)
	r.POST("/foods", s.createFood)
	r.PUT("/foods/:id", s.updateFood)
	r.GET("/searchFoods", s.searchFoods)

	// Gallery
	r.GET("/gallery", s.listGallery)
	r.GET("/gallery/:id", s.getGalleryItem)
	r.POST("/gallery", s.createGalleryItem)

	return r
}

func main() {
	cfg := LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}
	db := client.Database("flavorFusion")

	srv := NewServer(cfg,
		newMongoFoodStore(db),
		newMongoPurchaseStore(db),
		newMongoGalleryStore(db),
		newMongoUserStore(db),
	)

	log.Printf("Flavor Fusion server is running on port %s", cfg.Port)
	if err := srv.Router().Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
