package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"birthday-timeline-api/config/common"
	"birthday-timeline-api/dto/res"
	"birthday-timeline-api/security"
)

type Middleware struct {
	*common.Config
	*security.JWT
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, jwt *security.JWT, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, JWT: jwt, Log: logger}
}

func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	secretKey := middleware.GetJwtConfig()

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: secretKey},
		ContextKey: "jwt",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Error("Failed to validate JWT")
			return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
				Status:     fiber.ErrUnauthorized.Message,
				StatusCode: fiber.StatusUnauthorized,
				Error:      "Token is not valid",
			})
		},
	})(c)
}

// AdminOnly gates the management routes on the persisted admin flag carried
// in the token. There is no request-time phone comparison; the flag is seeded
// at account creation.
func (middleware *Middleware) AdminOnly(c *fiber.Ctx) error {
	token := bearerToken(c)
	isAdmin, err := middleware.JWT.IsAdminFromToken(token)

	if err != nil || !isAdmin {
		middleware.Log.WithError(err).Warn("Rejected non-admin access to management route")
		return c.Status(fiber.StatusForbidden).JSON(res.ErrorResponse{
			Status:     fiber.ErrForbidden.Message,
			StatusCode: fiber.StatusForbidden,
			Error:      "Administrator access required",
		})
	}

	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get("Authorization")
	if len(header) <= 7 {
		return ""
	}
	return header[7:]
}
