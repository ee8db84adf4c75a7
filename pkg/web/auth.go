package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
)

func (h *Handlers) keyFunc(ctx context.Context) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			if len(h.JWTSecret) == 0 {
				return nil, errors.New("shared secret tokens are not accepted")
			}
			return h.JWTSecret, nil
		case *jwt.SigningMethodRSA, *jwt.SigningMethodECDSA:
			if h.JWKS == nil {
				return nil, errors.New("no jwks configured")
			}
			keyID, ok := token.Header["kid"].(string)
			if !ok {
				return nil, errors.New("kid in header is missing or not a string")
			}
			return h.JWKS.LookupKey(ctx, keyID)
		default:
			return nil, fmt.Errorf("signature type %v is not valid", token.Header["alg"])
		}
	}
}

func (h *Handlers) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing Authorization header"})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid Authorization header"})
			c.Abort()
			return
		}

		if len(h.JWTSecret) == 0 && h.JWKS == nil {
			log.Warn().Msg("Rejecting token as no JWT secret or JWKS url is configured")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to validate token"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		parser := jwt.Parser{
			SkipClaimsValidation: h.Debug,
		}
		parsedToken, err := parser.Parse(token, h.keyFunc(c.Request.Context()))
		if err != nil {
			log.Warn().Err(err).Msg("Failed to validate token")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to validate token"})
			c.Abort()
			return
		}

		claims, ok := parsedToken.Claims.(jwt.MapClaims)
		if !ok || !parsedToken.Valid {
			log.Warn().Msg("Failed to validate token, something wrong with claims")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to validate token"})
			c.Abort()
			return
		}

		subject, _ := claims["sub"].(string)
		c.Set("subject", subject)
		c.Next()
	}
}
