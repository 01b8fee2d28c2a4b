package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fisherfans/api/internal/config"
	"github.com/fisherfans/api/pkg/jwt"
)

func main() {
	_ = godotenv.Load()

	// Flags for customization
	userID := flag.String("user", "", "User ID to sign the session for (required)")
	email := flag.String("email", "dev@fisherfans.local", "Email for the token")
	issuer := flag.String("issuer", envOr("JWT_ISSUER", "fisherfans-api"), "JWT issuer")
	ttl := flag.Duration("ttl", time.Hour, "Session lifetime")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "Error: -user is required")
		flag.Usage()
		os.Exit(2)
	}

	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     envOr("JWT_SECRET", config.DefaultJWTSecret),
		Issuer:     *issuer,
		Expiration: *ttl,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating JWT service: %v\n", err)
		os.Exit(1)
	}

	token, claims, err := jwtService.Sign(*userID, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"accessToken": token,
			"tokenType":   "Bearer",
			"expiresIn":   int(ttl.Seconds()),
			"userId":      *userID,
			"email":       *email,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return
	}

	fmt.Println("Session Token Generated")
	fmt.Println("=======================")
	fmt.Printf("User ID:  %s\n", *userID)
	fmt.Printf("Email:    %s\n", *email)
	fmt.Printf("Expires:  %s\n", claims.ExpiresAt.Time.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8443/api/auth/me\n", token)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
