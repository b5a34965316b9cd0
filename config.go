// config.go

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	Port        string
	TokenSecret []byte
	CORSOrigins []string
}

// LoadConfig reads the environment once at startup. A .env file is
// optional; real deployments inject the variables directly.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:    os.Getenv("MONGO_URL"),
		Port:        os.Getenv("PORT"),
		TokenSecret: []byte(os.Getenv("ACCESS_TOKEN_SECRET")),
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.kunr0xg.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
			os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
		)
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	} else {
		cfg.CORSOrigins = []string{"http://localhost:5173"}
	}
	return cfg
}
