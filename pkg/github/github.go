// Package github exchanges an OAuth authorization code for the authenticated
// GitHub user's profile. It is a stateless pass-through around two outbound
// calls: the token endpoint and the /user API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const defaultUserAPIURL = "https://api.github.com/user"

// User is the portion of the GitHub /user API response we care about.
type User struct {
	ID        int64  `json:"id"` // GitHub's numeric user ID, stable across renames
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Provider wraps golang.org/x/oauth2 for the GitHub authorization code flow.
type Provider struct {
	config     *oauth2.Config
	userAPIURL string
}

// NewProvider creates a Provider with the given OAuth app credentials.
// callbackURL must match the authorization callback URL registered on GitHub.
func NewProvider(clientID, clientSecret, callbackURL string) *Provider {
	return &Provider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"read:user"},
			Endpoint:     github.Endpoint,
		},
		userAPIURL: defaultUserAPIURL,
	}
}

// AuthURL returns the URL to redirect the user to for authorization.
func (p *Provider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for the GitHub user profile:
// code -> access token (server to server), then token -> GET /user.
// The caller bounds both calls through ctx.
func (p *Provider) Exchange(ctx context.Context, code string) (*User, error) {
	oauthToken, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("github: exchanging OAuth code: %w", err)
	}

	// Client returns an *http.Client that adds the bearer token to every request.
	client := p.config.Client(ctx, oauthToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userAPIURL, nil)
	if err != nil {
		return nil, fmt.Errorf("github: building /user request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: calling /user API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github: /user API returned status %d", resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("github: decoding /user response: %w", err)
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("github: /user API returned an invalid user")
	}
	return &user, nil
}
