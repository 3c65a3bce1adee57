package service

import (
	"context"

	"github.com/yourusername/workforce-api/internal/domain/entity"
	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
	"github.com/yourusername/workforce-api/pkg/auth"
)

// AuthService разрешает непрозрачные учетные данные в идентичность
// пользователя. Состоянием не владеет: проверка токена делегируется
// JWT-сервису, поиск пользователя — справочнику.
type AuthService struct {
	userService *UserService
	jwtService  *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userService *UserService, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userService: userService,
		jwtService:  jwtService,
	}
}

// SignUp регистрирует нового пользователя
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput) (*entity.User, error) {
	return s.userService.Create(ctx, input)
}

// SignIn проверяет email и пароль и выдает токен доступа
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := s.userService.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, apperrors.Internal(err)
	}
	return token, user, nil
}

// Authenticate разрешает токен в пользователя. Любой сбой проверки дает
// ErrUnauthenticated, идентичность по умолчанию не подставляется.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.jwtService.ParseToken(token)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthenticated, err.Error())
	}

	user, err := s.userService.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthenticated, "user not found for token")
	}
	return user, nil
}
