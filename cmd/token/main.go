// Command token prints a signed bearer token for local testing of the API.
package main

import (
	"flag" // Command line flags
	"fmt"  // Output
	"time" // Token lifetime

	"fina/internal/config" // Custom import path (Config)
	"fina/internal/utils"  // JWT helpers

	"github.com/sirupsen/logrus" // Logging library
)

func main() {
	user := flag.String("user", "", "user id to put in the token (defaults to DEFAULT_USER_ID)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not set; the API ignores tokens without it")
	}
	if *user == "" {
		*user = cfg.DefaultUserID
	}

	token, err := utils.GenerateJWT(*user, cfg.JWTSecret, *ttl)
	if err != nil {
		logrus.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(token)
}
