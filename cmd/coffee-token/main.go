// Command coffee-token prints a machine-to-machine access token for the
// coffee-shop API, obtained with the client-credentials grant.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"quizcafe/internal/config"
)

func main() {
	clientID := flag.String("client-id", os.Getenv("AUTH_CLIENT_ID"), "identity provider client id")
	clientSecret := flag.String("client-secret", os.Getenv("AUTH_CLIENT_SECRET"), "identity provider client secret")
	flag.Parse()

	if *clientID == "" || *clientSecret == "" {
		log.Fatal("client id and client secret are required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	token, err := clientConfig(cfg.Auth, *clientID, *clientSecret).Token(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch token: %v", err)
	}
	fmt.Println(token.AccessToken)
}
