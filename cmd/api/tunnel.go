package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Google rejects plain-localhost redirect URIs for web clients, so local
// development runs behind an ngrok tunnel and the redirect URI is derived
// from the tunnel's public URL at startup.

const (
	tunnelDetectAttempts = 10
	tunnelDetectDelay    = 3 * time.Second
)

type tunnelList struct {
	Tunnels []tunnel `json:"tunnels"`
}

type tunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectPublicURL polls the ngrok local API until a tunnel shows up,
// preferring HTTPS. ngrok may still be starting when the server boots.
func detectPublicURL(ctx context.Context, apiBase string) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	for attempt := 1; ; attempt++ {
		publicURL, err := fetchTunnelURL(ctx, client, apiBase+"/api/tunnels")
		if err == nil {
			return publicURL, nil
		}
		if attempt >= tunnelDetectAttempts {
			return "", fmt.Errorf("no usable tunnel after %d attempts: %w", attempt, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(tunnelDetectDelay):
		}
	}
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build tunnel API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tunnel API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var list tunnelList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return "", fmt.Errorf("failed to decode tunnel API response: %w", err)
	}

	for _, t := range list.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(list.Tunnels) > 0 {
		return list.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("no active tunnels")
}
