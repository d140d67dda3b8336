package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// .env.local (máy dev) được load trước nên thắng .env; system env luôn thắng cả hai
var envFiles = []string{".env.local", ".env"}

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	loaded := 0
	for _, file := range envFiles {
		err := godotenv.Load(file)
		switch {
		case err == nil:
			loaded++
			log.Printf("📄 Loaded %s", file)
		case !errors.Is(err, fs.ErrNotExist):
			log.Printf("⚠️  Failed to parse %s: %v", file, err)
		}
	}
	if loaded == 0 {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	// ========================================
	// SET GIN MODE
	// ========================================
	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve()
}
