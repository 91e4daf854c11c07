// Command bootstrap-publisher creates a publisher user for the
// newsletter endpoint. Run once per environment to seed credentials:
//
//	go run scripts/bootstrap-publisher.go -username editor -password <secret>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/inkletter/inkletter/internal/auth"
	"github.com/inkletter/inkletter/internal/repository"
)

type output struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		username    = flag.String("username", "", "Publisher username")
		password    = flag.String("password", "", "Publisher password")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "-username and -password are required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	user := &repository.PublisherUser{
		ID:           ulid.Make().String(),
		Username:     *username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create user: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output{UserID: user.ID, Username: user.Username})
	default:
		fmt.Printf("created publisher %s (id %s)\n", user.Username, user.ID)
	}
}
