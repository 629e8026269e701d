package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/dghubble/oauth1"
	"github.com/joho/godotenv"
)

var (
	serverURL      string
	consumerKey    string
	consumerSecret string
)

func init() {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	serverURL = strings.TrimRight(getEnv("SERVER_URL", "http://localhost:8080"), "/")
	consumerKey = getEnv("CONSUMER_KEY", "")
	consumerSecret = getEnv("CONSUMER_SECRET", "")

	if consumerKey == "" || consumerSecret == "" {
		fmt.Println("Error: CONSUMER_KEY and CONSUMER_SECRET must be set in .env file or environment variables.")
		fmt.Println("Create them with: mkt-api create-access -email you@example.com -app-name CLI -redirect-uri http://localhost/")
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	fmt.Printf("=== OAuth 1.0a Three-Legged Flow CLI Demo ===\n")

	config := &oauth1.Config{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
		CallbackURL:    "oob",
		Endpoint: oauth1.Endpoint{
			RequestTokenURL: serverURL + "/oauth/token/",
			AuthorizeURL:    serverURL + "/oauth/authorize/",
			AccessTokenURL:  serverURL + "/oauth/register/",
		},
	}

	// Step 1: request token
	requestToken, requestSecret, err := config.RequestToken()
	if err != nil {
		fmt.Printf("Failed to get request token: %v\n", err)
		os.Exit(1)
	}

	// Step 2: user authorizes in the browser
	authorizationURL, err := config.AuthorizationURL(requestToken)
	if err != nil {
		fmt.Printf("Failed to build authorization URL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nOpen this URL in your browser and grant access:\n\n  %s\n\n", authorizationURL)
	fmt.Print("Paste the oauth_verifier from the redirect URL: ")

	verifier, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		fmt.Printf("Failed to read verifier: %v\n", err)
		os.Exit(1)
	}

	// Step 3: exchange for an access token
	accessToken, accessSecret, err := config.AccessToken(requestToken, requestSecret, strings.TrimSpace(verifier))
	if err != nil {
		fmt.Printf("Failed to get access token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nAccess token: %s\n", accessToken)

	// Step 4: call the API as the user
	client := config.Client(context.Background(), oauth1.NewToken(accessToken, accessSecret))
	if err := whoami(client); err != nil {
		fmt.Printf("API call failed: %v\n", err)
		os.Exit(1)
	}
}

func whoami(client *http.Client) error {
	resp, err := client.Get(serverURL + "/api/v2/account/whoami/")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var identity map[string]any
	if err := json.Unmarshal(body, &identity); err != nil {
		return err
	}
	fmt.Println("\nAuthenticated as:")
	for _, key := range []string{"email", "authed_from", "region", "pinned"} {
		fmt.Printf("  %-12s %v\n", key+":", identity[key])
	}
	return nil
}
