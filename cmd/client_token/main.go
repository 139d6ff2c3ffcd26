// Command client_token issues a signed access token for an API client.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"orus/internal/config"
	"orus/internal/models"
	"orus/internal/utils"
)

func main() {
	config.LoadEnv()

	clientID := os.Getenv("CLIENT_ID")
	if clientID == "" {
		log.Fatal("CLIENT_ID must be set in environment")
	}

	permissions := []string{models.PermissionCardTokenize}
	if p := os.Getenv("CLIENT_PERMISSIONS"); p != "" {
		permissions = strings.Split(p, ",")
	}
	ttl := config.GetDurationEnv("CLIENT_TOKEN_TTL", 24*time.Hour)

	token, err := utils.GenerateClientToken(config.GetEnv("JWT_SECRET", ""), clientID, permissions, ttl)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println(token)
}
