// Package line implements the LINE Login code-exchange flow against the LINE
// platform APIs.
package line

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"megacare/config"
	"megacare/internal/domain/service"
)

const exchangeTimeout = 10 * time.Second

// tokenResponse is the LINE token endpoint's success payload. Only the ID
// token is used; the access token is not needed once the ID token's claims
// are verified.
type tokenResponse struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// OAuthService exchanges LINE authorization codes and verifies LINE ID
// tokens. LINE ID tokens for channels using the channel secret are signed
// with HS256, keyed by the secret itself.
type OAuthService struct {
	client        *resty.Client
	tokenURL      string
	issuer        string
	channelID     string
	channelSecret string
	logger        *slog.Logger
}

// NewOAuthService creates a new LINE OAuth service. Returns nil when LINE
// login is not configured, which disables the flow.
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	if cfg.Line == nil {
		return nil
	}

	client := resty.New().
		SetTimeout(exchangeTimeout).
		SetHeader("Content-Type", "application/x-www-form-urlencoded")

	return &OAuthService{
		client:        client,
		tokenURL:      cfg.Line.TokenURL,
		issuer:        cfg.Line.Issuer,
		channelID:     cfg.Line.ChannelID,
		channelSecret: cfg.Line.ChannelSecret,
		logger:        logger,
	}
}

// ExchangeCode trades the authorization code for LINE tokens and returns the
// verified profile claims from the ID token.
func (s *OAuthService) ExchangeCode(ctx context.Context, authorizationCode, redirectURI string) (*service.LineProfile, error) {
	var tokens tokenResponse
	var apiErr errorResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "authorization_code",
			"code":          authorizationCode,
			"redirect_uri":  redirectURI,
			"client_id":     s.channelID,
			"client_secret": s.channelSecret,
		}).
		SetResult(&tokens).
		SetError(&apiErr).
		Post(s.tokenURL)
	if err != nil {
		return nil, errors.Wrap(err, "LINE token exchange request failed")
	}

	if resp.IsError() {
		s.logger.Warn("LINE token exchange rejected",
			slog.Int("status", resp.StatusCode()),
			slog.String("error", apiErr.ErrorDescription))

		return nil, errors.Wrapf(service.ErrOAuthCodeRejected, "LINE token exchange failed: %s", apiErr.ErrorDescription)
	}

	if tokens.IDToken == "" {
		return nil, errors.Wrap(service.ErrOAuthTokenInvalid, "id_token not found in LINE response")
	}

	return s.verifyIDToken(tokens.IDToken)
}

// verifyIDToken checks the ID token's signature, issuer, audience and expiry
// before trusting any of its claims.
func (s *OAuthService) verifyIDToken(idToken string) (*service.LineProfile, error) {
	claims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(idToken, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.channelSecret), nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.channelID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrOAuthTokenInvalid, err.Error())
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.Wrap(service.ErrOAuthTokenInvalid, "LINE user ID (sub) not found in ID token")
	}

	profile := &service.LineProfile{LineUserID: sub}
	if name, ok := claims["name"].(string); ok {
		profile.DisplayName = name
	}
	if picture, ok := claims["picture"].(string); ok {
		profile.PictureURL = picture
	}
	if email, ok := claims["email"].(string); ok {
		profile.Email = email
	}

	return profile, nil
}
