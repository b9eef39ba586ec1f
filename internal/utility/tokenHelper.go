package utility

import (
	"log"
	"os"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

type SignedDetails struct {
	Email      string
	First_name string
	Last_name  string
	Uid        string
	jwt.StandardClaims
}

func secretKey() string {
	key := os.Getenv("SECRET_KEY")
	if key == "" {
		key = "marketplace-dev-secret"
	}
	return key
}

// GenerateAllTokens creates the access and refresh tokens issued on signup and login.
func GenerateAllTokens(email string, firstName string, lastName string, uid string) (string, string, error) {
	claims := &SignedDetails{
		Email:      email,
		First_name: firstName,
		Last_name:  lastName,
		Uid:        uid,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	refreshClaims := &SignedDetails{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(168 * time.Hour).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey()))
	if err != nil {
		log.Println(err)
		return "", "", err
	}

	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(secretKey()))
	if err != nil {
		log.Println(err)
		return "", "", err
	}

	return token, refreshToken, nil
}

// ValidateToken parses a signed token and returns its claims, or a non-empty
// message describing why the token was rejected.
func ValidateToken(signedToken string) (*SignedDetails, string) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey()), nil
		},
	)
	if err != nil {
		return nil, err.Error()
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok {
		return nil, "the token is invalid"
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, "token is expired"
	}

	return claims, ""
}
