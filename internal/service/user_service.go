package service

import (
	"context"
	"errors"
	"strings"

	"jobhive/internal/middleware"
	"jobhive/internal/models"
	"jobhive/internal/repository"
	"jobhive/internal/storage"
	"jobhive/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService provides account and profile business logic.
type UserService struct {
	userRepo repository.UserRepository
	files    storage.FileStore
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateProfileInput carries profile changes. Zero-value fields are left
// unchanged; Avatar is nil when no new file was uploaded.
type UpdateProfileInput struct {
	UserID uint
	Name   string
	Avatar *storage.Upload
}

func NewUserService(userRepo repository.UserRepository, files storage.FileStore) *UserService {
	return &UserService{userRepo: userRepo, files: files}
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	fields := map[string][]string{}
	if err := validation.ValidateName(in.Name); err != nil {
		fields["name"] = append(fields["name"], err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		fields["email"] = append(fields["email"], err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		fields["password"] = append(fields["password"], err.Error())
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if existing != nil {
		return nil, models.NewDuplicateError("Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewDuplicateError("Email is already registered")
		}
		return nil, models.NewInternalError(err)
	}
	return user, nil
}

// Authenticate checks the credentials and returns the user on success. The
// same error is returned for an unknown email and a wrong password so the
// response doesn't reveal which accounts exist.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("User", id)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("User", in.UserID)
	}
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		if err := validation.ValidateName(in.Name); err != nil {
			return nil, models.NewFieldValidationError(map[string][]string{
				"name": {err.Error()},
			})
		}
		user.Name = strings.TrimSpace(in.Name)
	}

	if in.Avatar != nil {
		if _, err := validation.ValidateImageUpload(in.Avatar.Filename, in.Avatar.Size(), validation.MaxAvatarSize); err != nil {
			return nil, models.NewFieldValidationError(map[string][]string{
				"avatar": {"Avatar " + err.Error()},
			})
		}
		deleteFileQuietly(ctx, s.files, user.Avatar)
		key, err := s.files.Store(ctx, "avatars", in.Avatar)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		middleware.UploadsTotal.WithLabelValues("avatar", "stored").Inc()
		user.Avatar = key
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, models.NewInternalError(err)
	}
	return user, nil
}
