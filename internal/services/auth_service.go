package services

import (
	"fmt"
	"log"
	"regexp"
	"time"

	"blog/internal/models"
	"blog/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// emailPattern is a deliberately loose shape check: something, an @,
// something, a dot, something. Full RFC 5322 parsing is not attempted.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService. The secret is injected here
// rather than read from the environment so tests can use distinct secrets.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: time.Hour, // Token valid for 1 hour
	}
}

// RegisterUser validates the input, hashes the password, persists the user
// and issues a token for the new account.
func (s *AuthService) RegisterUser(email, password, username string) (*models.User, string, error) {
	if email == "" || password == "" || username == "" {
		return nil, "", authErr(KindValidation, "Email, password, and username are required")
	}
	if len(password) < 6 {
		return nil, "", authErr(KindValidation, "Password must be at least 6 characters long")
	}
	if !emailPattern.MatchString(email) {
		return nil, "", authErr(KindValidation, "Please provide a valid email address")
	}

	// Friendly pre-check; the store's unique index on email is the final
	// arbiter under concurrent registrations.
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, "", authErr(KindDuplicateEmail, "Email already in use")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		log.Printf("Error creating user: %v", err)
		return nil, "", authErr(KindStoreFailure, "Could not register user")
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginUser authenticates a user and returns a JWT token if successful.
// Unknown email, wrong password and lookup failures all produce the same
// error so callers cannot enumerate accounts.
func (s *AuthService) LoginUser(email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", authErr(KindValidation, "Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil || user == nil {
		return nil, "", authErr(KindInvalidCredentials, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", authErr(KindInvalidCredentials, "Invalid credentials")
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// generateToken signs a token asserting the user's identity for one hour.
func (s *AuthService) generateToken(userID string) (string, error) {
	if len(s.jwtSecret) == 0 {
		return "", authErr(KindSecretMissing, "signing secret not configured")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenDurat).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a token, returning the user ID it
// asserts. The check is stateless: the credential store is never consulted.
// Expired, tampered and malformed tokens are all rejected the same way.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return "", authErr(KindInvalidToken, "Token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", authErr(KindInvalidToken, "Token is not valid")
	}
	userID, ok := claims["id"].(string)
	if !ok || userID == "" {
		return "", authErr(KindInvalidToken, "Token is not valid")
	}
	return userID, nil
}

// ResolveUser looks up the subject of a verified token. A user deleted
// after issuance is indistinguishable from one that never existed.
func (s *AuthService) ResolveUser(userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return nil, authErr(KindInvalidCredentials, "User not found")
	}
	return user, nil
}
