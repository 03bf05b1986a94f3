// Command devtoken prints a signed bearer token for local development.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/insightbud/internal/platform/config"
	"github.com/SscSPs/insightbud/internal/utils"
	"github.com/google/uuid"
)

func main() {
	userID := flag.String("user", "", "user id to put in the token subject (random when empty)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *userID == "" {
		*userID = uuid.NewString()
	}

	token, err := utils.GenerateJWT(*userID, cfg.JWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		slog.Error("Failed to sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "user: %s\n", *userID)
	fmt.Println(token)
}
