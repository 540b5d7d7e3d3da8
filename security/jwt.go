package security

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"time"

	"birthday-timeline-api/config/common"
	"birthday-timeline-api/entity"
)

type JWT struct {
	config *common.Config
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{config: config}
}

func (j *JWT) GenerateToken(user *entity.User) (string, error) {
	secretKey := j.config.GetJwtConfig()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
		"aud":      "birthday-timeline-api",
		"iss":      "birthday-timeline-api",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 12).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(secretKey)
}

func (j *JWT) VerifyJwtToken(token string) (jwt.MapClaims, error) {
	secretKey := j.config.GetJwtConfig()

	tokenParse, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := tokenParse.Claims.(jwt.MapClaims); ok && tokenParse.Valid {
		return claims, nil
	}

	return nil, err
}

func (j *JWT) GetUserIdFromToken(token string) (string, error) {
	claims, err := j.VerifyJwtToken(token)
	if err != nil {
		return "", err
	}

	userID, ok := claims["user_id"].(string)

	log.Tracef("User ID From JWT: %s", userID)

	if !ok {
		return "", jwt.ErrInvalidKey
	}

	return userID, nil
}

// IsAdminFromToken reads the persisted admin flag baked into the token at
// login time.
func (j *JWT) IsAdminFromToken(token string) (bool, error) {
	claims, err := j.VerifyJwtToken(token)
	if err != nil {
		return false, err
	}

	isAdmin, ok := claims["is_admin"].(bool)
	if !ok {
		return false, nil
	}
	return isAdmin, nil
}
