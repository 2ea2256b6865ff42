package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end flow through the use-case layer: sign up, log in, publish a
// post, and read it back.
func TestSignupPostReadback(t *testing.T) {
	ctx := context.Background()

	userRepo := newMemUserRepo()
	userSvc := NewUserService(userRepo, fakeHasher{}, fakeTokens{}, newMemImageStorage(), nil)
	postSvc, _, _ := newPostSvc()

	u, err := userSvc.Register(ctx, RegisterInput{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	login, err := userSvc.Login(ctx, "carol@example.com", "password123")
	require.NoError(t, err)
	uid, err := fakeTokens{}.VerifyAndExtractUserID(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)

	p, err := postSvc.Create(ctx, CreatePostInput{
		UserID:        uid,
		ImageFileName: "sunset.jpg",
		ImageData:     []byte{0xff, 0xd8},
		Caption:       "golden hour",
	})
	require.NoError(t, err)

	got, err := postSvc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, uid, got.UserID)
	assert.Equal(t, "golden hour", got.Caption)
	assert.NotEmpty(t, got.ImageURL)

	posts, err := postSvc.ListByUser(ctx, uid)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, p.ID, posts[0].ID)
}
