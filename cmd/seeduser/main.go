// cmd/seeduser — creates or resets a user directly in the store file.
// Usage: go run ./cmd/seeduser [username] [password] [role]
package main

import (
	"fmt"
	"log"
	"os"

	"retailpos/internal/auth"
	"retailpos/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/store.db"
	}
	username, password, role := "admin", "admin123", model.RoleAdministrator
	if len(os.Args) > 1 {
		username = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}
	if len(os.Args) > 3 {
		role = os.Args[3]
	}

	salt, hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("hash error: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("migrate error: %v", err)
	}

	result := db.Exec(`
		INSERT INTO users (username, salt, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (username) DO UPDATE
		SET salt = excluded.salt,
		    password_hash = excluded.password_hash,
		    role = excluded.role
	`, username, salt, hash, role)
	if result.Error != nil {
		log.Fatalf("insert error: %v", result.Error)
	}
	fmt.Printf("user %q created/updated with role %s\n", username, role)
}
