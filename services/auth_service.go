package services

import (
	"errors"
	"time"

	"biblioteca-backend/models"
	"biblioteca-backend/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (uint, error)
	Login(req models.LoginRequest) (string, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Register creates a user and returns its generated id. Username
// uniqueness is left to the store's constraint rather than a pre-read,
// so two concurrent registrations cannot both pass a check.
func (s *authService) Register(req models.RegisterRequest) (uint, error) {
	role := req.Role
	if role == "" {
		role = models.RoleRegular
	}
	if !role.Valid() {
		return 0, models.ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Email:    req.Email,
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, models.ErrDuplicateUser
		}
		return 0, err
	}

	return user.ID, nil
}

// Login verifies the credentials and returns a signed token. Unknown
// user and wrong password collapse into one error so the response does
// not leak which usernames exist.
func (s *authService) Login(req models.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return s.generateToken(user)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"usuario_id": user.ID,
		"rol":        string(user.Role),
		"exp":        now.Add(s.tokenTTL).Unix(),
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.jwtSecret)
}
