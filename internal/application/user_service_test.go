package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jayzhong/insta-backend/internal/domain"
	"github.com/Jayzhong/insta-backend/pkg/helpers"
)

func newUserSvc() (*UserService, *memUserRepo) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, fakeHasher{}, fakeTokens{}, newMemImageStorage(), nil)
	return svc, repo
}

func register(t *testing.T, svc *UserService, username, email string) string {
	t.Helper()
	u, err := svc.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return u.ID
}

func TestRegister(t *testing.T) {
	svc, repo := newUserSvc()

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.True(t, u.IsPublic)
	assert.Contains(t, u.AvatarURL, "ui-avatars.com")
	assert.Contains(t, u.AvatarURL, "alice")
	assert.NotEqual(t, "password123", u.Password)

	stored, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, u.Username, stored.Username)
}

func TestRegisterStoresVerifiableHash(t *testing.T) {
	repo := newMemUserRepo()
	hasher := &helpers.BcryptHasher{}
	svc := NewUserService(repo, hasher, fakeTokens{}, newMemImageStorage(), nil)

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", u.Password)
	assert.True(t, hasher.Verify("s3cretpass", u.Password))
	assert.False(t, hasher.Verify("wrongpass", u.Password))
}

func TestRegisterUsernameTaken(t *testing.T) {
	svc, repo := newUserSvc()
	register(t, svc, "alice", "alice@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Len(t, repo.users, 1)
}

func TestRegisterEmailTaken(t *testing.T) {
	svc, repo := newUserSvc()
	register(t, svc, "alice", "alice@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Len(t, repo.users, 1)
}

func TestLogin(t *testing.T) {
	svc, _ := newUserSvc()
	id := register(t, svc, "alice", "alice@example.com")

	res, err := svc.Login(context.Background(), "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "token-"+id, res.AccessToken)
	assert.False(t, res.ExpiresAt.IsZero())
}

func TestLoginFailsUniformly(t *testing.T) {
	svc, _ := newUserSvc()
	register(t, svc, "alice", "alice@example.com")

	// unknown email and wrong password must be indistinguishable
	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "password123")
	_, errWrongPwd := svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPwd, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPwd.Error())
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _ := newUserSvc()
	_, err := svc.GetProfile(context.Background(), "missing-id")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _ := newUserSvc()
	id := register(t, svc, "alice", "alice@example.com")

	nick := "Ally"
	u, err := svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Nickname: &nick})
	require.NoError(t, err)
	assert.Equal(t, "Ally", u.Nickname)
	assert.Equal(t, "", u.Bio)
	assert.True(t, u.IsPublic)

	// empty string is an explicit value, not "leave untouched"
	empty := ""
	private := false
	u, err = svc.UpdateProfile(context.Background(), id, UpdateProfileInput{Nickname: &empty, IsPublic: &private})
	require.NoError(t, err)
	assert.Equal(t, "", u.Nickname)
	assert.False(t, u.IsPublic)
}

func TestUpdateProfileAvatarUpload(t *testing.T) {
	svc, _ := newUserSvc()
	id := register(t, svc, "alice", "alice@example.com")

	u, err := svc.UpdateProfile(context.Background(), id, UpdateProfileInput{
		AvatarFileName: "me.png",
		AvatarData:     []byte{0x89, 0x50},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://img.test/"+id+".png", u.AvatarURL)
}

func TestUpdateProfileDeleteAvatarWinsOverUpload(t *testing.T) {
	svc, _ := newUserSvc()
	id := register(t, svc, "alice", "alice@example.com")

	u, err := svc.UpdateProfile(context.Background(), id, UpdateProfileInput{
		AvatarFileName: "me.png",
		AvatarData:     []byte{0x89, 0x50},
		DeleteAvatar:   true,
	})
	require.NoError(t, err)
	assert.True(t, strings.Contains(u.AvatarURL, "ui-avatars.com"))
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newUserSvc()
	nick := "x"
	_, err := svc.UpdateProfile(context.Background(), "missing-id", UpdateProfileInput{Nickname: &nick})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
