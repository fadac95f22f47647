package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Chetan55567/portfolio-api/pkg/auth"
	"github.com/joho/godotenv"
)

// Prints a bcrypt hash for ADMIN_PASSWORD_HASH so the plaintext credential
// never has to live in the environment.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	if password == "" {
		log.Fatal("usage: go run scripts/hash_password.go <password> (or set ADMIN_PASSWORD)")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
}
