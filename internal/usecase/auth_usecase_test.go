package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"philatelysamaaj/internal/domain/entity"
	"philatelysamaaj/internal/domain/repository/mocks"
	"philatelysamaaj/pkg/errors"
)

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("creates profile and signs in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		auth := &fakeAuth{createdUID: "uid-1", tokens: &AuthTokens{IDToken: "tok", RefreshToken: "ref", UID: "uid-1"}}
		uc := NewAuthUseCase(users, auth)

		users.EXPECT().GetByEmail(gomock.Any(), "asha@example.com").Return(nil, errors.NotFound("User", nil))
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, u *entity.User) error {
			assert.Equal(t, "uid-1", u.ID)
			assert.Equal(t, entity.UserTypeCollector, u.UserType)
			assert.Equal(t, entity.RoleUser, u.Role)
			return nil
		})

		res, err := uc.Register(context.Background(), RegisterInput{Email: "asha@example.com", Password: "secret1", Name: "Asha"})
		require.NoError(t, err)
		assert.Equal(t, "tok", res.Tokens.IDToken)
		assert.Equal(t, "Asha", res.User.Name)
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		uc := NewAuthUseCase(users, &fakeAuth{})

		users.EXPECT().GetByEmail(gomock.Any(), "asha@example.com").Return(&entity.User{ID: "x"}, nil)

		_, err := uc.Register(context.Background(), RegisterInput{Email: "asha@example.com", Password: "secret1"})
		assert.True(t, errors.Is(err, "CONFLICT"))
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	uc := NewAuthUseCase(users, &fakeAuth{signInErr: stderrors.New("INVALID_PASSWORD")})
	_, err := uc.Login(context.Background(), "a@b.c", "nope")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	uc = NewAuthUseCase(users, &fakeAuth{tokens: &AuthTokens{IDToken: "tok", UID: "u1"}})
	users.EXPECT().GetByID(gomock.Any(), "u1").Return(&entity.User{ID: "u1"}, nil)
	res, err := uc.Login(context.Background(), "a@b.c", "right")
	require.NoError(t, err)
	assert.Equal(t, "u1", res.User.ID)
}

func TestAuthUseCase_FederatedSignIn(t *testing.T) {
	identity := &VerifiedIdentity{UID: "g1", Email: "g@example.com", Name: "Gita", Provider: "google.com"}

	t.Run("creates missing profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		uc := NewAuthUseCase(users, &fakeAuth{identity: identity})

		users.EXPECT().GetByID(gomock.Any(), "g1").Return(nil, errors.NotFound("User", nil))
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		user, err := uc.FederatedSignIn(context.Background(), "id-token")
		require.NoError(t, err)
		assert.Equal(t, "google.com", user.Provider)
	})

	t.Run("existing profile untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		uc := NewAuthUseCase(users, &fakeAuth{identity: identity})

		users.EXPECT().GetByID(gomock.Any(), "g1").Return(&entity.User{ID: "g1", Name: "Old"}, nil)

		user, err := uc.FederatedSignIn(context.Background(), "id-token")
		require.NoError(t, err)
		assert.Equal(t, "Old", user.Name)
	})

	t.Run("bad token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, &fakeAuth{verifyErr: stderrors.New("expired")})
		_, err := uc.FederatedSignIn(context.Background(), "x")
		assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	})
}

func TestUserUseCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	auth := &fakeAuth{}
	uc := NewUserUseCase(users, auth)
	ctx := context.Background()

	owner := &entity.User{ID: "u1", Email: "u1@example.com", ContactDetails: "+91 99999"}
	users.EXPECT().GetByID(gomock.Any(), "u1").Return(owner, nil).AnyTimes()

	t.Run("public profile hides contact", func(t *testing.T) {
		got, err := uc.GetPublicProfile(ctx, "u1", "u2")
		require.NoError(t, err)
		assert.Empty(t, got.ContactDetails)
		assert.Empty(t, got.Email)
		assert.Equal(t, "+91 99999", owner.ContactDetails)

		got, err = uc.GetPublicProfile(ctx, "u1", "u1")
		require.NoError(t, err)
		assert.Equal(t, "+91 99999", got.ContactDetails)
	})

	t.Run("update rejects unknown user type", func(t *testing.T) {
		bad := "alien"
		_, err := uc.UpdateProfile(ctx, "u1", entity.ProfileUpdate{UserType: &bad})
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	})

	t.Run("update merges fields", func(t *testing.T) {
		state := "Kerala"
		users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		got, err := uc.UpdateProfile(ctx, "u1", entity.ProfileUpdate{State: &state})
		require.NoError(t, err)
		assert.Equal(t, "Kerala", got.State)
	})

	t.Run("set role syncs claim", func(t *testing.T) {
		users.EXPECT().SetRole(gomock.Any(), "u1", entity.RoleAdmin).Return(nil)
		_, err := uc.SetRole(ctx, "u1", entity.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, auth.claims["u1"])

		_, err = uc.SetRole(ctx, "u1", "superuser")
		assert.True(t, errors.Is(err, "BAD_REQUEST"))
	})
}
