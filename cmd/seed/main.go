package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/Jayzhong/insta-backend/config"
	"github.com/Jayzhong/insta-backend/pkg/helpers"
)

// Seeds two demo accounts, a follow edge between them, and one post, so a
// fresh database has something to browse.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	alice := seedUser(db, "alice", "alice@example.com", "password123")
	bob := seedUser(db, "bob", "bob@example.com", "password123")

	if _, err := db.Exec(`
		INSERT INTO follows (follower_id, followed_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followed_id) DO NOTHING
	`, bob, alice); err != nil {
		log.Fatalf("failed to seed follow: %v", err)
	}
	fmt.Println("seeded follow: bob -> alice")

	postID := uuid.NewString()
	if _, err := db.Exec(`
		INSERT INTO posts (id, user_id, image_url, caption)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, postID, alice, "https://picsum.photos/seed/"+postID+"/800", "hello world"); err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	fmt.Printf("seeded post: id=%s user=alice\n", postID)
}

func seedUser(db *sql.DB, username, email, password string) string {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (id, username, email, password_hash, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO UPDATE SET updated_at = now()
		RETURNING id
	`, uuid.NewString(), username, email, hash, helpers.DefaultAvatarURL(username)).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", username, err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, username, password)
	return id
}
