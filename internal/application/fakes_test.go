package application

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/Jayzhong/insta-backend/internal/domain"
	"github.com/Jayzhong/insta-backend/internal/domain/entity"
)

// In-memory repositories backing the service tests. They enforce the same
// uniqueness rules the SQL schema does, so conflict paths behave like the
// real storage layer.

type memUserRepo struct {
	users map[string]*entity.User // by id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Add(_ context.Context, u *entity.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return domain.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Save(_ context.Context, u *entity.User) error {
	for id, existing := range r.users {
		if id == u.ID {
			continue
		}
		if existing.Username == u.Username {
			return domain.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type memPostRepo struct {
	posts map[string]*entity.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[string]*entity.Post{}}
}

func (r *memPostRepo) Add(_ context.Context, p *entity.Post) error {
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *memPostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	if p, ok := r.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memPostRepo) ListByUser(_ context.Context, userID string) ([]*entity.Post, error) {
	out := make([]*entity.Post, 0)
	for _, p := range r.posts {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	// newest first
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *memPostRepo) Delete(_ context.Context, p *entity.Post) error {
	delete(r.posts, p.ID)
	return nil
}

func (r *memPostRepo) Save(_ context.Context, p *entity.Post) error {
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

type memFollowRepo struct {
	edges map[[2]string]*entity.Follow
	users *memUserRepo
}

func newMemFollowRepo(users *memUserRepo) *memFollowRepo {
	return &memFollowRepo{edges: map[[2]string]*entity.Follow{}, users: users}
}

func (r *memFollowRepo) Add(_ context.Context, f entity.Follow) error {
	key := [2]string{f.FollowerID, f.FollowedID}
	if _, ok := r.edges[key]; ok {
		return domain.ErrAlreadyFollowing
	}
	r.edges[key] = &f
	return nil
}

func (r *memFollowRepo) Remove(_ context.Context, followerID, followedID string) error {
	key := [2]string{followerID, followedID}
	if _, ok := r.edges[key]; !ok {
		return domain.ErrNotFollowing
	}
	delete(r.edges, key)
	return nil
}

func (r *memFollowRepo) GetFollowers(_ context.Context, userID string) ([]*entity.User, error) {
	out := make([]*entity.User, 0)
	for key := range r.edges {
		if key[1] == userID {
			if u := r.users.users[key[0]]; u != nil {
				cp := *u
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (r *memFollowRepo) GetFollowing(_ context.Context, userID string) ([]*entity.User, error) {
	out := make([]*entity.User, 0)
	for key := range r.edges {
		if key[0] == userID {
			if u := r.users.users[key[1]]; u != nil {
				cp := *u
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (r *memFollowRepo) IsFollowing(_ context.Context, followerID, followedID string) (bool, error) {
	_, ok := r.edges[[2]string{followerID, followedID}]
	return ok, nil
}

type memImageStorage struct {
	saved map[string][]byte // ownerID+ext -> data
}

func newMemImageStorage() *memImageStorage {
	return &memImageStorage{saved: map[string][]byte{}}
}

func (s *memImageStorage) Save(_ context.Context, ownerID, fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	name := ownerID + ext
	s.saved[name] = data
	return "https://img.test/" + name, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (fakeHasher) Verify(plain, hashed string) bool  { return hashed == "hashed:"+plain }

type fakeTokens struct{}

func (fakeTokens) GenerateToken(userID string) (string, time.Time, error) {
	return "token-" + userID, time.Now().Add(30 * time.Minute), nil
}

func (fakeTokens) VerifyAndExtractUserID(token string) (string, error) {
	if !strings.HasPrefix(token, "token-") {
		return "", domain.ErrInvalidCredentials
	}
	return strings.TrimPrefix(token, "token-"), nil
}
