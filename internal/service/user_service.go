package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	"github.com/yourusername/workforce-api/internal/domain/repository"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

// SignUpInput содержит данные регистрации пользователя
type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UpdateProfileInput содержит частичное обновление профиля.
// nil означает "поле не менять".
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
}

// UserService предоставляет операции над справочником пользователей
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create регистрирует нового пользователя. Пароль хешируется до записи,
// открытый текст не сохраняется.
func (s *UserService) Create(ctx context.Context, input SignUpInput) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID возвращает пользователя по ID
func (s *UserService) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByEmail возвращает пользователя по email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// List возвращает страницу пользователей
func (s *UserService) List(ctx context.Context, offset, limit int) ([]entity.User, error) {
	return s.userRepo.List(ctx, offset, limit)
}

// UpdateProfile применяет частичное обновление и возвращает сохраненную
// запись, а не эхо входных данных.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, input UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword меняет пароль пользователя. Старый пароль обязан
// подойти к сохраненному хешу; новый, совпадающий со старым, отклоняется.
func (s *UserService) UpdatePassword(ctx context.Context, id uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !user.CheckPassword(oldPassword) {
		return apperrors.Wrap(apperrors.ErrUnauthenticated, "old password does not match")
	}
	if user.CheckPassword(newPassword) {
		return apperrors.Wrap(apperrors.ErrPasswordUnchanged, "new password matches the current one")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal(err)
	}
	user.Password = string(hashed)
	return s.userRepo.Update(ctx, user)
}

// Delete удаляет пользователя
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}

// Authenticate проверяет пару email/пароль. Отсутствующий пользователь и
// неверный пароль дают одинаковый результат: какая именно проверка не
// прошла, наружу не сообщается.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthenticated, "invalid email or password")
	}
	if !user.CheckPassword(password) {
		return nil, apperrors.Wrap(apperrors.ErrUnauthenticated, "invalid email or password")
	}
	return user, nil
}
