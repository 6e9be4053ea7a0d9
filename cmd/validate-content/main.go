package main

import (
	"log"
	"os"

	"geocache-bot/internal/content"

	"github.com/joho/godotenv"
)

// Validates the adventure content document without starting the bot. Useful
// before deploying a content edit.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	path := os.Getenv("CONTENT_FILE_PATH")
	if path == "" {
		path = "content.json"
	}
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	store := content.NewStore(path, 0)

	steps, err := store.Load()
	if err != nil {
		log.Fatalf("❌ Content document invalid: %v", err)
	}

	last, err := store.LastStepID()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	log.Printf("✅ Content document OK: %d steps, last step id %d", len(steps), last)
}
