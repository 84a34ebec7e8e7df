// Seed inserts a demo account and one listing for local development.
package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/thriftly-app/thriftly-api/config"
	"github.com/thriftly-app/thriftly-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	tokens := helpers.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiration)

	name := "demo-seller"
	token, err := tokens.Issue(name)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (name, token)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET token = EXCLUDED.token
		RETURNING id
	`, name, token).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("failed to begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	var articleID int64
	err = tx.QueryRow(`
		INSERT INTO articles (title, description, owner_id, size, gender, price, status, article_type)
		VALUES ('Vintage denim jacket', 'Lightly worn, great condition', $1, 'm', 'unisex', 4500, 'available', 'outerwear')
		RETURNING id
	`, userID).Scan(&articleID)
	if err != nil {
		log.Fatalf("failed to seed article: %v", err)
	}

	var imageID int64
	err = tx.QueryRow(`
		INSERT INTO images (article_id, filename, data)
		VALUES ($1, 'jacket.png', ''::bytea)
		RETURNING id
	`, articleID).Scan(&imageID)
	if err != nil {
		log.Fatalf("failed to seed image: %v", err)
	}

	if _, err := tx.Exec(`UPDATE articles SET image_id = $1 WHERE id = $2`, imageID, articleID); err != nil {
		log.Fatalf("failed to link image: %v", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("failed to commit: %v", err)
	}

	fmt.Printf("seeded user %d (token %s) with article %d\n", userID, token, articleID)
}
