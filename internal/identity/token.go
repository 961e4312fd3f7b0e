package identity

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
)

var _ app.IdentityProvider = (*TokenProvider)(nil)

// TokenProvider holds the signed-in user's ID token. The token is issued and
// verified elsewhere; only its claims are read here.
type TokenProvider struct {
	mu    sync.RWMutex
	token string
	user  *models.User
	now   func() time.Time
}

func NewTokenProvider() *TokenProvider {
	return &TokenProvider{now: time.Now}
}

func (p *TokenProvider) SignIn(idToken string) (*models.User, error) {
	const funcName = "TokenProvider.SignIn"

	idToken = strings.TrimSpace(strings.TrimPrefix(idToken, "Bearer "))
	if idToken == "" {
		return nil, fmt.Errorf("%w: empty token", errs.ErrInvalidToken)
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(idToken, claims); err != nil {
		logger.Warn("failed to parse id token",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidToken, err)
	}

	if !claims.VerifyExpiresAt(p.now().Unix(), false) {
		return nil, fmt.Errorf("%w: token expired", errs.ErrInvalidToken)
	}

	user := userFromClaims(claims)
	if user.ID == "" {
		return nil, fmt.Errorf("%w: token has no subject", errs.ErrInvalidToken)
	}

	p.mu.Lock()
	p.token = idToken
	p.user = user
	p.mu.Unlock()

	logger.Info("user signed in",
		zap.String("function", funcName),
		zap.String("user_id", user.ID),
	)

	copied := *user
	return &copied, nil
}

func (p *TokenProvider) SignOut() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.token = ""
	p.user = nil
}

func (p *TokenProvider) CurrentUser() (*models.User, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.user == nil {
		return nil, false
	}
	copied := *p.user
	return &copied, true
}

func (p *TokenProvider) Token() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.token
}

func userFromClaims(claims jwt.MapClaims) *models.User {
	id := stringClaim(claims, "user_id")
	if id == "" {
		id = stringClaim(claims, "sub")
	}

	return &models.User{
		ID:        id,
		Name:      stringClaim(claims, "name"),
		Email:     stringClaim(claims, "email"),
		AvatarURL: stringClaim(claims, "picture"),
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
