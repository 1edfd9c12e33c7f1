// Package auth manages the OAuth2 credentials for the Google Calendar API.
//
// Client credentials are read from a downloaded client-secret JSON file and
// the user token is cached in a local JSON file. The token is acquired once
// via the out-of-band code flow (the auth subcommand) and reused for every
// sync run afterwards.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
)

// oauthConfig builds the OAuth2 config for calendar access from the client
// credentials file.
func oauthConfig(credentialsFile string) (*oauth2.Config, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}
	cfg, err := google.ConfigFromJSON(data, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials file: %w", err)
	}
	return cfg, nil
}

// Client returns an authorized HTTP client using the cached token. It fails
// with a pointer at the auth subcommand if no token has been stored yet.
func Client(ctx context.Context, credentialsFile, tokenFile string) (*http.Client, error) {
	cfg, err := oauthConfig(credentialsFile)
	if err != nil {
		return nil, err
	}
	token, err := loadToken(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("no stored token (run hockey-sync auth first): %w", err)
	}
	return cfg.Client(ctx, token), nil
}

// Authorize runs the interactive code flow: print the consent URL to out,
// read the authorization code from in, exchange it, and cache the token.
func Authorize(ctx context.Context, credentialsFile, tokenFile string, in io.Reader, out io.Writer) error {
	cfg, err := oauthConfig(credentialsFile)
	if err != nil {
		return err
	}

	url := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "Visit this URL to authorize calendar access:\n%s\n\n", url)
	fmt.Fprint(out, "Enter the authorization code: ")

	var code string
	if _, err := fmt.Fscan(in, &code); err != nil {
		return fmt.Errorf("reading authorization code: %w", err)
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchanging authorization code: %w", err)
	}

	if err := saveToken(tokenFile, token); err != nil {
		return err
	}
	fmt.Fprintf(out, "Token saved to %s\n", tokenFile)
	return nil
}

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading token: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	return &token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing token: %w", err)
	}
	return nil
}
