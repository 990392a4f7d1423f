package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/osse101/DungeonBot_Go/internal/database"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	// Construct connection string
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "dungeonbot"),
	)

	dbPool, err := database.NewPool(connString, 10, 30*time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Dump Platforms
	fmt.Println("--- Platforms ---")
	rows, err := dbPool.Query(ctx, "SELECT platform_id, platform_name FROM platforms")
	if err != nil {
		log.Printf("Failed to query platforms: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id int
			var name string
			if err := rows.Scan(&id, &name); err != nil {
				log.Printf("Failed to scan platform: %v", err)
			}
			fmt.Printf("ID: %d, Name: %s\n", id, name)
		}
	}

	// Dump Users
	fmt.Println("\n--- Users ---")
	rows, err = dbPool.Query(ctx, "SELECT user_id, username, created_at FROM users")
	if err != nil {
		log.Printf("Failed to query users: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id string
			var username string
			var createdAt time.Time
			if err := rows.Scan(&id, &username, &createdAt); err != nil {
				log.Printf("Failed to scan user: %v", err)
			}
			fmt.Printf("ID: %s, Username: %s, CreatedAt: %v\n", id, username, createdAt)
		}
	}

	// Dump Links
	fmt.Println("\n--- User Platform Links ---")
	linkQuery := `
		SELECT upl.user_platform_link_id, u.username, p.platform_name, upl.external_id
		FROM user_platform_links upl
		JOIN users u ON upl.user_id = u.user_id
		JOIN platforms p ON upl.platform_id = p.platform_id
	`
	rows, err = dbPool.Query(ctx, linkQuery)
	if err != nil {
		log.Printf("Failed to query links: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id int
			var username, platform, externalID string
			if err := rows.Scan(&id, &username, &platform, &externalID); err != nil {
				log.Printf("Failed to scan link: %v", err)
			}
			fmt.Printf("LinkID: %d, User: %s, Platform: %s, ExternalID: %s\n", id, username, platform, externalID)
		}
	}

	// Dump Quests
	fmt.Println("\n--- Quests ---")
	questQuery := `
		SELECT quest_id, title, quest_giver, location_given, active, completed_at
		FROM quests
		ORDER BY quest_id
	`
	rows, err = dbPool.Query(ctx, questQuery)
	if err != nil {
		log.Printf("Failed to query quests: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id int
			var title, giver, location string
			var active bool
			var completedAt *time.Time
			if err := rows.Scan(&id, &title, &giver, &location, &active, &completedAt); err != nil {
				log.Printf("Failed to scan quest: %v", err)
			}
			status := "active"
			if !active {
				status = "completed"
				if completedAt != nil {
					status = fmt.Sprintf("completed %s", completedAt.Format("2006-01-02"))
				}
			}
			fmt.Printf("ID: %d, Title: %q, Giver: %s, Location: %s, Status: %s\n", id, title, giver, location, status)
		}
	}

	// Dump recent events
	fmt.Println("\n--- Recent Events (last 10) ---")
	eventQuery := `
		SELECT id, event_type, COALESCE(username, ''), created_at
		FROM events
		ORDER BY created_at DESC
		LIMIT 10
	`
	rows, err = dbPool.Query(ctx, eventQuery)
	if err != nil {
		log.Printf("Failed to query events: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id int64
			var eventType, username string
			var createdAt time.Time
			if err := rows.Scan(&id, &eventType, &username, &createdAt); err != nil {
				log.Printf("Failed to scan event: %v", err)
			}
			fmt.Printf("ID: %d, Type: %s, User: %s, At: %v\n", id, eventType, username, createdAt)
		}
	}
}
