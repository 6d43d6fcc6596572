package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maintenance-dashboard/internal/domain"
	apperrors "github.com/spec-kit/maintenance-dashboard/pkg/util/errorutil"
)

const (
	principalKey = "auth_principal"

	// TokenCookie carries the access token for browser requests.
	TokenCookie = "access_token"
)

// Principal represents the authenticated caller.
type Principal struct {
	SubjectID   string
	SubjectType domain.SubjectType
	Role        *domain.StaffRole
	Name        string
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens *TokenValidator
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	raw, err := tokenFromRequest(c)
	if err != nil {
		return err
	}

	claims, err := m.tokens.Validate(raw)
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	switch claims.Subject {
	case domain.SubjectTypeUser, domain.SubjectTypeStaff:
	default:
		return apperrors.NewUnauthorized("unknown subject")
	}

	SetPrincipal(c, &Principal{
		SubjectID:   claims.RegisteredClaims.Subject,
		SubjectType: claims.Subject,
		Role:        claims.Role,
		Name:        claims.Name,
	})
	return c.Next()
}

func tokenFromRequest(c *fiber.Ctx) (string, error) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", apperrors.NewUnauthorized("invalid authorization header")
		}
		return parts[1], nil
	}
	if cookie := c.Cookies(TokenCookie); cookie != "" {
		return cookie, nil
	}
	return "", apperrors.NewUnauthorized("missing authorization header")
}

// SetPrincipal attaches the authenticated caller to the request.
func SetPrincipal(c *fiber.Ctx, p *Principal) {
	c.Locals(principalKey, p)
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
