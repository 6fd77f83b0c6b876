package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"travel_booking/constants"
	"travel_booking/database"
	"travel_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoUserFromToken resolves the authenticated user from the parsed
// token in Locals. The second return reports admin role.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false
	}
	tokenClaim, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}
	userIdFloat, ok := tokenClaim["userId"].(float64)
	if !ok {
		return model.TokenClaim{}, false
	}
	email, _ := tokenClaim["email"].(string)

	var user model.User
	db := database.DB
	if err := db.First(&user, uint(userIdFloat)).Error; err != nil {
		log.Printf("Account not found: id=%d, error=%v", uint(userIdFloat), err)
		return model.TokenClaim{}, false
	}

	claim := model.TokenClaim{
		UserId: user.ID,
		Email:  email,
		Role:   user.Role,
	}
	return claim, user.Role == constants.ROLE_ADMIN
}

// GetLoggedUser loads the full user record for the request token.
func GetLoggedUser(c *fiber.Ctx) (*model.User, error) {
	claim, _ := GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return nil, errors.New("not logged in")
	}
	var user model.User
	if err := database.DB.First(&user, claim.UserId).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
