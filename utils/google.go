package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// GoogleUser is the identity returned by Google after a successful
// code exchange.
type GoogleUser struct {
	Sub           string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// GoogleOAuthConfig builds the OAuth2 config from the environment.
func GoogleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URI"),
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// ExchangeGoogleCode trades an authorization code for the user's Google
// identity. The ID token from the exchange is verified against our client
// ID; if the exchange carried no ID token we fall back to the userinfo
// endpoint.
func ExchangeGoogleCode(ctx context.Context, code string) (*GoogleUser, error) {
	conf := GoogleOAuthConfig()
	if conf.ClientID == "" || conf.ClientSecret == "" {
		return nil, errors.New("google oauth is not configured")
	}

	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	if rawID, ok := token.Extra("id_token").(string); ok && rawID != "" {
		return verifyIDToken(ctx, rawID, conf.ClientID)
	}

	return fetchUserInfo(ctx, conf, token)
}

func verifyIDToken(ctx context.Context, rawID, audience string) (*GoogleUser, error) {
	payload, err := idtoken.Validate(ctx, rawID, audience)
	if err != nil {
		return nil, fmt.Errorf("failed to validate ID token: %w", err)
	}

	user := &GoogleUser{Sub: payload.Subject}
	if v, ok := payload.Claims["email"].(string); ok {
		user.Email = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		user.Name = v
	}
	if v, ok := payload.Claims["picture"].(string); ok {
		user.Picture = v
	}
	if v, ok := payload.Claims["email_verified"].(bool); ok {
		user.EmailVerified = v
	}
	return user, nil
}

func fetchUserInfo(ctx context.Context, conf *oauth2.Config, token *oauth2.Token) (*GoogleUser, error) {
	resp, err := conf.Client(ctx, token).Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("google userinfo error: %s", string(body))
	}

	var info struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		Name     string `json:"name"`
		Picture  string `json:"picture"`
		Verified bool   `json:"verified_email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to parse user info: %w", err)
	}

	return &GoogleUser{
		Sub:           info.ID,
		Email:         info.Email,
		Name:          info.Name,
		Picture:       info.Picture,
		EmailVerified: info.Verified,
	}, nil
}
