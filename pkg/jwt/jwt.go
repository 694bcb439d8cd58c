package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrExpired se devuelve cuando el token es válido pero ya pasó su exp.
var ErrExpired = errors.New("jwt: token expirado")

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Permissions viaja en el token para que el middleware autorice sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string   `json:"user_id"`
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

// Generate genera un token JWT firmado con el usuario y sus permisos.
func Generate(secret, userID, username string, permissions []string, issuer string, expMinutes int) (string, error) {
	return generateAt(time.Now(), secret, userID, username, permissions, issuer, expMinutes)
}

func generateAt(now time.Time, secret, userID, username string, permissions []string, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:      userID,
		Username:    username,
		Permissions: permissions,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve sus claims.
// Un token vencido devuelve ErrExpired; cualquier otro fallo devuelve el error del parser.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("claims sin user_id")
	}
	return claims, nil
}
