package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/makkamasjid/masjid-management-backend/config"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service interface {
	Login(ctx context.Context, in LoginInput) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type service struct {
	repo Repository
	cfg  *config.Config
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{repo: repo, cfg: cfg}
}

func (s *service) Login(ctx context.Context, in LoginInput) (*TokenPair, error) {
	admin, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	access, err := s.generateToken(admin, s.cfg.JWTAccessSecret, s.cfg.JWTAccessTTLHours)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateToken(admin, s.cfg.JWTRefreshSecret, s.cfg.JWTRefreshTTLHours)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid refresh token claims")
	}

	adminIDFloat, ok := claims["admin_id"].(float64)
	if !ok {
		return "", errors.New("admin_id missing in refresh token")
	}

	admin, err := s.repo.GetByID(ctx, uint(adminIDFloat))
	if err != nil {
		return "", errors.New("admin not found")
	}

	return s.generateToken(admin, s.cfg.JWTAccessSecret, s.cfg.JWTAccessTTLHours)
}

func (s *service) generateToken(admin *Admin, secret string, ttlHours int) (string, error) {
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"exp":      time.Now().Add(time.Duration(ttlHours) * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// SeedAdminUser creates the management login from ADMIN_EMAIL/ADMIN_PASSWORD
// if no admin exists yet. Skipped silently when the credentials are unset.
func SeedAdminUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("ℹ️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	repo := NewRepository(db)
	count, err := repo.Count(context.Background())
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &Admin{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	}
	if err := repo.Create(context.Background(), admin); err != nil {
		return err
	}

	log.Printf("✅ Seeded admin user %s", cfg.AdminEmail)
	return nil
}
