// Command promote sets a user's role by email address.
// It is used to bootstrap or repair administrator access.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	userrepo "github.com/heartmarshall/yoruba-science-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/yoruba-science-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	role := flag.String("role", string(domain.UserRoleAdmin), "role to assign: admin, editor or viewer")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin]")
		os.Exit(1)
	}

	target := domain.UserRole(*role)
	if !target.IsValid() {
		fmt.Fprintf(os.Stderr, "Invalid role %q.\n", *role)
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	user, err := userrepo.New(pool).SetRoleByEmail(ctx, *email, target)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	fmt.Printf("User %q now has role %s.\n", user.Email, user.Role)
}
