// Command mint-token signs a development access token for a given user.
// Tokens are normally minted by the identity service; this is for local
// testing against a running server.
//
// Usage:
//
//	mint-token --user=<uuid> [--group=<uuid>] [--admin] [--ttl=24h]
//
// Requires AUTH_JWT_SECRET environment variable to be set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tweetsight/backend/internal/auth"
	"github.com/tweetsight/backend/internal/domain"
)

func main() {
	user := flag.String("user", "", "user id (UUID) the token identifies")
	group := flag.String("group", "", "group id (UUID) of the user, if any")
	admin := flag.Bool("admin", false, "mark the user as group admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	issuer := flag.String("issuer", "tweetsight", "token issuer")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "Usage: mint-token --user=<uuid> [--group=<uuid>] [--admin]")
		os.Exit(1)
	}

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET environment variable is required")
	}

	userID, err := uuid.Parse(*user)
	if err != nil {
		log.Fatalf("parse user id: %v", err)
	}

	requester := domain.Requester{UserID: userID, GroupAdmin: *admin}
	if *group != "" {
		groupID, err := uuid.Parse(*group)
		if err != nil {
			log.Fatalf("parse group id: %v", err)
		}
		requester.GroupID = &groupID
	}

	manager := auth.NewJWTManager(secret, *issuer, *ttl)
	token, err := manager.GenerateAccessToken(requester)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println(token)
}
