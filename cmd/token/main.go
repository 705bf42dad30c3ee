// Command token mints an access token for local development and smoke tests.
// It signs with the configured AUTH_JWT_SECRET, so the server accepts it.
//
// Usage:
//
//	token --user=<uuid> [--role=user] [--ttl=1h]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/claims-backend/internal/auth"
	"github.com/heartmarshall/claims-backend/internal/config"
	"github.com/heartmarshall/claims-backend/internal/domain"
)

func main() {
	userFlag := flag.String("user", "", "user id (uuid) to put in the subject claim")
	role := flag.String("role", string(domain.UserRoleUser), "role claim (user or admin)")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: token --user=<uuid> [--role=user] [--ttl=1h]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, *ttl).
		GenerateAccessToken(userID, domain.UserRole(*role))
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
