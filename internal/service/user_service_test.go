package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/workforce-api/internal/pkg/errors"
)

func newUserService() *UserService {
	return NewUserService(&fakeUserRepo{s: newFakeStore()})
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.Create(ctx, SignUpInput{
		FirstName: "Иван",
		LastName:  "Петров",
		Email:     "ivan@example.com",
		Password:  "secret-password",
	})
	require.NoError(t, err)

	// Открытый текст пароля не сохраняется
	assert.NotEqual(t, "secret-password", user.Password)
	assert.True(t, user.CheckPassword("secret-password"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	input := SignUpInput{Email: "ivan@example.com", Password: "secret-password"}
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestAuthenticate(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, SignUpInput{Email: "ivan@example.com", Password: "secret-password"})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "ivan@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	// Неверный пароль и несуществующий email неразличимы снаружи
	_, errBadPassword := svc.Authenticate(ctx, "ivan@example.com", "wrong")
	_, errNoUser := svc.Authenticate(ctx, "nobody@example.com", "secret-password")
	require.Error(t, errBadPassword)
	require.Error(t, errNoUser)
	assert.ErrorIs(t, errBadPassword, apperrors.ErrUnauthenticated)
	assert.ErrorIs(t, errNoUser, apperrors.ErrUnauthenticated)
	assert.Equal(t, errBadPassword.Error(), errNoUser.Error())
}

func TestUpdatePassword(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.Create(ctx, SignUpInput{Email: "ivan@example.com", Password: "secret-password"})
	require.NoError(t, err)

	t.Run("старый пароль обязан подойти", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, user.ID, "wrong", "new-password")
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("новый пароль не должен совпадать со старым", func(t *testing.T) {
		err := svc.UpdatePassword(ctx, user.ID, "secret-password", "secret-password")
		assert.ErrorIs(t, err, apperrors.ErrPasswordUnchanged)
	})

	t.Run("успешная смена", func(t *testing.T) {
		require.NoError(t, svc.UpdatePassword(ctx, user.ID, "secret-password", "new-password"))

		_, err := svc.Authenticate(ctx, "ivan@example.com", "secret-password")
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
		_, err = svc.Authenticate(ctx, "ivan@example.com", "new-password")
		assert.NoError(t, err)
	})
}

func TestUpdateProfilePartial(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.Create(ctx, SignUpInput{
		FirstName: "Иван",
		LastName:  "Петров",
		Email:     "ivan@example.com",
		Password:  "secret-password",
	})
	require.NoError(t, err)

	firstName := "Петр"
	updated, err := svc.UpdateProfile(ctx, user.ID, UpdateProfileInput{FirstName: &firstName})
	require.NoError(t, err)
	assert.Equal(t, "Петр", updated.FirstName)
	assert.Equal(t, "Петров", updated.LastName)

	// Возвращается сохраненная запись
	stored, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Петр", stored.FirstName)
}

func TestDeleteUser(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	user, err := svc.Create(ctx, SignUpInput{Email: "ivan@example.com", Password: "secret-password"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))
	_, err = svc.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, user.ID), apperrors.ErrNotFound)
}
