package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zewarhq/zewar-api/internal/application/auth"
	"github.com/zewarhq/zewar-api/internal/application/dto"
	"github.com/zewarhq/zewar-api/internal/domain"
	"github.com/zewarhq/zewar-api/internal/domain/entity"
)

// fakeUserRepo in-memory UserRepository; findErr, when set, fails every lookup.
type fakeUserRepo struct {
	users   map[string]*entity.User // keyed by email
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func newUseCase(repo *fakeUserRepo) *auth.UseCase {
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "zewar-test",
	})
}

func TestRegister_CreatesUserWithDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	out, err := uc.Register(dto.RegisterRequest{Email: "asma@example.com", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, "asma@example.com", out.Email)
	assert.Equal(t, entity.RoleStaff, out.Role, "role defaults to staff")
	assert.Equal(t, "active", out.Status)
	require.Contains(t, repo.users, "asma@example.com")
	assert.NotEqual(t, "secret123", repo.users["asma@example.com"].PasswordHash, "password stored hashed")
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "asma@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "asma@example.com", Password: "other456"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

// A backend failure during the email lookup must surface as-is, not fall
// through to Create as if the email were free.
func TestRegister_LookupFailurePropagates(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findErr = errors.New("connection refused")
	uc := newUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "asma@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.findErr)
	assert.Empty(t, repo.users, "no user persisted when the lookup fails")
}

func TestLogin_SuccessIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "asma@example.com", Password: "secret123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "asma@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "asma@example.com", out.User.Email)
}

func TestLogin_Failures(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "asma@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Email: "asma@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.users["asma@example.com"].Status = "disabled"
	_, err = uc.Login(dto.LoginRequest{Email: "asma@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
