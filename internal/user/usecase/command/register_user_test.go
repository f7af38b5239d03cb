package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sardorbek/bozor/internal/user/domain"
	"github.com/sardorbek/bozor/pkg/auth"
)

type fakeUserRepo struct {
	users    map[uint]*domain.User
	profiles map[uint]*domain.Profile
	nextID   uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:    make(map[uint]*domain.User),
		profiles: make(map[uint]*domain.Profile),
	}
}

func (r *fakeUserRepo) Create(user *domain.User) error {
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (r *fakeUserRepo) Update(user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("user not found")
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) FindProfile(userID uint) (*domain.Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return &domain.Profile{UserID: userID}, nil
	}
	return profile, nil
}

func (r *fakeUserRepo) SaveProfile(profile *domain.Profile) error {
	stored := *profile
	r.profiles[profile.UserID] = &stored
	return nil
}

func TestRegisterUserHashesPasswordAndCreatesProfile(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(RegisterUserCommand{
		Username: "sardor",
		Email:    "sardor@example.com",
		Password: "parol123",
		FullName: "Sardor Alimov",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "parol123", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "parol123"))
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, user.IsActive)

	profile, err := repo.FindProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sardor Alimov", profile.FullName)
}

func TestRegisterUserRejectsDuplicates(t *testing.T) {
	repo := newFakeUserRepo()
	handler := NewRegisterUserHandler(repo)

	_, err := handler.Handle(RegisterUserCommand{
		Username: "sardor",
		Email:    "sardor@example.com",
		Password: "parol123",
	})
	require.NoError(t, err)

	_, err = handler.Handle(RegisterUserCommand{
		Username: "sardor",
		Email:    "other@example.com",
		Password: "parol123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username already exists")

	_, err = handler.Handle(RegisterUserCommand{
		Username: "boshqa",
		Email:    "sardor@example.com",
		Password: "parol123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email already exists")
}

func TestRegisterUserRejectsShortPassword(t *testing.T) {
	handler := NewRegisterUserHandler(newFakeUserRepo())

	_, err := handler.Handle(RegisterUserCommand{
		Username: "sardor",
		Email:    "sardor@example.com",
		Password: "12345",
	})
	require.Error(t, err)
}

func TestLoginReturnsTokenForValidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	_, err := register.Handle(RegisterUserCommand{
		Username: "sardor",
		Email:    "sardor@example.com",
		Password: "parol123",
	})
	require.NoError(t, err)

	resp, err := login.Handle(LoginUserCommand{Username: "sardor", Password: "parol123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	claims, err := auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "sardor", claims.Username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	_, err := register.Handle(RegisterUserCommand{
		Username: "sardor",
		Email:    "sardor@example.com",
		Password: "parol123",
	})
	require.NoError(t, err)

	_, err = login.Handle(LoginUserCommand{Username: "sardor", Password: "notparol"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")

	_, err = login.Handle(LoginUserCommand{Username: "nobody", Password: "parol123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestUpdateProfileUpserts(t *testing.T) {
	repo := newFakeUserRepo()
	register := NewRegisterUserHandler(repo)
	update := NewUpdateProfileHandler(repo)

	user, err := register.Handle(RegisterUserCommand{
		Username: "sardor",
		Email:    "sardor@example.com",
		Password: "parol123",
	})
	require.NoError(t, err)

	profile, err := update.Handle(UpdateProfileCommand{
		UserID:   user.ID,
		FullName: "Sardor Alimov",
		Phone:    "+998901234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sardor Alimov", profile.FullName)

	profile, err = update.Handle(UpdateProfileCommand{
		UserID:   user.ID,
		FullName: "Sardorbek Alimov",
		Phone:    "+998901234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sardorbek Alimov", profile.FullName)

	_, err = update.Handle(UpdateProfileCommand{UserID: 999, FullName: "Yo'q Odam"})
	require.Error(t, err)
}
