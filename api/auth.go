package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/microcollab/microcollab-api/store"
)

// requestJWT issues a token for a seeded user. This is the mock login:
// any known email authenticates without a password.
func (s *Server) requestJWT(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}

	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	user, err := s.store.GetUserByEmail(req.Email)
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	now := time.Now()
	exp := now.Add(time.Duration(viper.GetInt("jwt.expire")) * time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Issuer:    "microcollab-api",
		Subject:   user.ID,
		ExpiresAt: exp.Unix(),
		IssuedAt:  now.Unix(),
		Id:        uuid.New().String(),
	})

	signed, err := token.SignedString([]byte(viper.GetString("jwt.secret")))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jwt_token": signed,
		"expire_in": exp.Unix() - now.Unix(),
		"user":      user,
	})
}

// authMiddleware extracts the user ID out of the bearer token and puts
// it into the request context under `userID`.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidAuthorizationFormat)
			return
		}

		claims := jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(parts[1], &claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(viper.GetString("jwt.secret")), nil
		})
		if err != nil || !token.Valid {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
			return
		}

		c.Set("userID", claims.Subject)
		c.Next()
	}
}

// recognizeUserMiddleware loads the authenticated user's record into
// the request context under `user`.
func (s *Server) recognizeUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.store.GetUser(c.GetString("userID"))
		if err != nil {
			if err == store.ErrUserNotFound {
				abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound, err)
			} else {
				abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			}
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || c.GetHeader("API-KEY") != key {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken)
			return
		}
		c.Next()
	}
}
