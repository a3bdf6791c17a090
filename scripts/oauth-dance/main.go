// scripts/oauth-dance/main.go
//
// Run this locally to walk through the Authorization-Code-with-PKCE flow by
// hand and inspect the tokens Google returns. Useful for verifying a client
// registration before pointing the server at it.
//
// Usage:
//   GOOGLE_CLIENT_ID=... GOOGLE_CLIENT_SECRET=... go run scripts/oauth-dance/main.go
//
// It prints the consent URL, you log in with your Google account, paste the
// authorization code back, and the resulting tokens are saved to token.json.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"meeting-scheduler/pkg/googleauth"
)

func main() {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Fatal("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}

	redirectURI := os.Getenv("GOOGLE_REDIRECT_URI")
	if redirectURI == "" {
		redirectURI = "http://localhost:8080/api/v1/scheduling/oauth/callback"
	}

	provider := googleauth.New(googleauth.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{"https://www.googleapis.com/auth/calendar"},
	})

	state, err := googleauth.GenerateState()
	if err != nil {
		log.Fatalf("Failed to generate state: %v", err)
	}
	verifier := googleauth.GenerateVerifier()

	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(provider.AuthCodeURL(state, verifier))
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := provider.Exchange(context.Background(), code, verifier)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	tokenPath := "token.json"
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Tokens saved to %s\n", tokenPath)
	fmt.Printf("Access token expires: %s\n", tok.Expiry)
	if tok.RefreshToken == "" {
		fmt.Println("WARNING: no refresh token returned; revoke the app's access and run again")
	}
}
