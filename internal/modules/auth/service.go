package auth

import (
	"errors"
	"time"

	"github.com/onetree-africa/core/internal/models"
	"github.com/onetree-africa/core/internal/pkg/apperr"
	sessionpkg "github.com/onetree-africa/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login checks credentials and issues a session-bound token. Failed lookups
// and failed password checks return the same message; the unknown-username
// branch additionally sleeps to slow down guessing.
func (s *Service) Login(username, password, ip, ua string) (string, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Select("id, username, name, password, last_login_time, last_login_ip").
		Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(3 * time.Second)
			return "", nil, apperr.New(apperr.NotAuthenticated, "Invalid credentials")
		}
		return "", nil, apperr.Persistence(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.NotAuthenticated, "Invalid credentials")
	}

	now := time.Now()
	s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	})
	u.LastLoginTime = &now
	u.LastLoginIP = ip

	token, _, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.PersistenceFailed, "failed to create session", err)
	}
	return token, &u, nil
}

// Register creates the single admin account. It refuses once any user exists.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	var count int64
	s.db.Model(&models.UserModel{}).Count(&count)
	if count > 0 {
		return nil, apperr.New(apperr.ValidationFailed, "admin account already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := dto.Name
	if name == "" {
		name = dto.Username
	}
	u := models.UserModel{Username: dto.Username, Password: string(hash), Name: name}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, apperr.Persistence(err)
	}
	return &u, nil
}

// IsRegistered reports whether the admin account exists yet.
func (s *Service) IsRegistered() bool {
	var count int64
	s.db.Model(&models.UserModel{}).Count(&count)
	return count > 0
}

// Logout revokes the session so the token is dead even before it expires.
func (s *Service) Logout(userID, sessionID string) error {
	if err := sessionpkg.Revoke(s.db, userID, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // already gone
		}
		return apperr.Persistence(err)
	}
	return nil
}

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Persistence(err)
	}
	return &u, nil
}
