package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/Jayzhong/insta-backend/internal/domain"
	"github.com/Jayzhong/insta-backend/internal/domain/entity"
	"github.com/Jayzhong/insta-backend/internal/domain/repository"
	"github.com/Jayzhong/insta-backend/pkg/helpers"
	"github.com/Jayzhong/insta-backend/pkg/mailer"
)

// UserService implements registration, login, and profile use cases.
// Pub and ES are optional; when nil the welcome email and search indexing
// are skipped.
type UserService struct {
	Repo         repository.UserRepository
	Hasher       PasswordHasher
	Tokens       TokenService
	Avatars      ImageStorage
	AvatarURL    func(username string) string
	Logger       *logrus.Logger
	Pub          *helpers.RabbitPublisher
	ES           *elasticsearch.Client
	ESUsersIndex string
}

func NewUserService(repo repository.UserRepository, hasher PasswordHasher, tokens TokenService, avatars ImageStorage, logger *logrus.Logger) *UserService {
	return &UserService{
		Repo:      repo,
		Hasher:    hasher,
		Tokens:    tokens,
		Avatars:   avatars,
		AvatarURL: helpers.DefaultAvatarURL,
		Logger:    logger,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user. The username/email lookups are an early exit;
// the unique constraints in storage are the authoritative guard, and the
// repository translates violations to the same domain errors.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if existing, err := s.Repo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, err := s.Repo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := entity.NewUser(in.Username, in.Email, hash, s.AvatarURL(in.Username))
	if err := s.Repo.Add(ctx, u); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "username": u.Username}).Info("user registered")
	}
	s.publishWelcomeEmail(ctx, u)
	_ = s.indexUser(ctx, u)
	return u, nil
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password fail identically.
func (s *UserService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	if u == nil {
		return LoginResult{}, domain.ErrInvalidCredentials
	}
	if !s.Hasher.Verify(password, u.Password) {
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.GenerateToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return LoginResult{}, err
	}
	return LoginResult{AccessToken: token, ExpiresAt: exp}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type UpdateProfileInput struct {
	Nickname       *string
	Bio            *string
	IsPublic       *bool
	AvatarFileName string
	AvatarData     []byte
	DeleteAvatar   bool
}

// UpdateProfile applies a partial update: nil fields stay untouched, explicit
// values (including empty strings) overwrite. DeleteAvatar resets the avatar
// to the generated default and takes precedence over an uploaded file.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Nickname != nil {
		u.Nickname = *in.Nickname
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.IsPublic != nil {
		u.IsPublic = *in.IsPublic
	}

	if in.DeleteAvatar {
		u.AvatarURL = s.AvatarURL(u.Username)
	} else if len(in.AvatarData) > 0 && in.AvatarFileName != "" {
		url, err := s.Avatars.Save(ctx, u.ID, in.AvatarFileName, in.AvatarData)
		if err != nil {
			return nil, err
		}
		u.AvatarURL = url
	}

	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, err
	}
	_ = s.indexUser(ctx, u)
	return u, nil
}

func (s *UserService) publishWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:      u.Email,
		Subject: "Welcome to Instabackend",
		Text:    "Hi " + u.Username + ", your account is ready. Happy posting!",
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("publish welcome email failed")
	}
}

func (s *UserService) indexUser(ctx context.Context, u *entity.User) error {
	if s.ES == nil || s.ESUsersIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         u.ID,
		"username":   u.Username,
		"nickname":   u.Nickname,
		"avatar_url": u.AvatarURL,
		"bio":        u.Bio,
		"is_public":  u.IsPublic,
		"created_at": u.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESUsersIndex, DocumentID: u.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("es index response error")
	}
	return nil
}

// SearchUsers runs a multi_match query over username and nickname.
func (s *UserService) SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESUsersIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"username^2", "nickname"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESUsersIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
