package services

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/fumiya-dev/entrymarket-go/dto"
	"github.com/fumiya-dev/entrymarket-go/middleware"
	"github.com/fumiya-dev/entrymarket-go/models"
	"github.com/fumiya-dev/entrymarket-go/repositories"
	"github.com/fumiya-dev/entrymarket-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{User: mockUser}
	service := NewUserService(repos)

	middleware.GenerateToken = func(userID uint, username string, isAdmin bool, expire time.Duration) (string, error) {
		return "test-token", nil
	}

	return service, mockUser
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

//
// --- TESTS ---
//

// ---------- RegisterUser ----------
func TestRegisterUser_DefaultsToUserRole(t *testing.T) {
	svc, userRepo := setupUserMocks(t)

	userRepo.EXPECT().GetUserByUsername("alice").Return(models.User{}, gorm.ErrRecordNotFound)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, string(models.UserRoleUser), u.Role)
		assert.NotEqual(t, "secret", u.Password)
		u.UID = 3
		return nil
	})

	res, err := svc.RegisterUser(dto.CreateUserInput{Username: "alice", Password: "secret"})

	assert.NoError(t, err)
	assert.Equal(t, uint(3), res.UID)
}

func TestRegisterUser_ExplicitAdminRole(t *testing.T) {
	svc, userRepo := setupUserMocks(t)

	role := "admin"
	userRepo.EXPECT().GetUserByUsername("root").Return(models.User{}, gorm.ErrRecordNotFound)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(t, "admin", u.Role)
		return nil
	})

	_, err := svc.RegisterUser(dto.CreateUserInput{Username: "root", Password: "secret", Role: &role})

	assert.NoError(t, err)
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, userRepo := setupUserMocks(t)

	userRepo.EXPECT().GetUserByUsername("alice").Return(models.User{UID: 1, Username: "alice"}, nil)

	res, err := svc.RegisterUser(dto.CreateUserInput{Username: "alice", Password: "secret"})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

// ---------- LoginUser ----------
func TestLoginUser_Success(t *testing.T) {
	svc, userRepo := setupUserMocks(t)

	stored := models.User{UID: 1, Username: "alice", Password: hashFor(t, "secret"), Role: "user"}
	userRepo.EXPECT().GetUserByUsername("alice").Return(stored, nil)

	user, token, err := svc.LoginUser("alice", "secret")

	assert.NoError(t, err)
	assert.Equal(t, "test-token", token)
	assert.Equal(t, uint(1), user.UID)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	svc, userRepo := setupUserMocks(t)

	stored := models.User{UID: 1, Username: "alice", Password: hashFor(t, "secret")}
	userRepo.EXPECT().GetUserByUsername("alice").Return(stored, nil)

	_, token, err := svc.LoginUser("alice", "wrong")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_UnknownUser(t *testing.T) {
	svc, userRepo := setupUserMocks(t)

	userRepo.EXPECT().GetUserByUsername("ghost").Return(models.User{}, gorm.ErrRecordNotFound)

	_, token, err := svc.LoginUser("ghost", "secret")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ---------- UpdateUser ----------
func TestUpdateUser_ChangePassword(t *testing.T) {
	svc, userRepo := setupUserMocks(t)

	stored := models.User{UID: 1, Username: "alice", Password: hashFor(t, "old-secret")}
	oldPw := "old-secret"
	newPw := "new-secret"

	userRepo.EXPECT().GetUserByID(uint(1)).Return(stored, nil)
	userRepo.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *models.User) error {
		err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(newPw))
		assert.NoError(t, err)
		return nil
	})

	_, err := svc.UpdateUser(1, dto.UpdateUserInput{OldPassword: &oldPw, Password: &newPw})

	assert.NoError(t, err)
}

func TestUpdateUser_PasswordNeedsOldPassword(t *testing.T) {
	svc, userRepo := setupUserMocks(t)

	stored := models.User{UID: 1, Username: "alice", Password: hashFor(t, "old-secret")}
	newPw := "new-secret"
	userRepo.EXPECT().GetUserByID(uint(1)).Return(stored, nil)

	_, err := svc.UpdateUser(1, dto.UpdateUserInput{Password: &newPw})

	assert.ErrorIs(t, err, ErrMissingOldPassword)
}

func TestUpdateUser_WrongOldPassword(t *testing.T) {
	svc, userRepo := setupUserMocks(t)

	stored := models.User{UID: 1, Username: "alice", Password: hashFor(t, "old-secret")}
	oldPw := "not-it"
	newPw := "new-secret"
	userRepo.EXPECT().GetUserByID(uint(1)).Return(stored, nil)

	_, err := svc.UpdateUser(1, dto.UpdateUserInput{OldPassword: &oldPw, Password: &newPw})

	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestUpdateUser_ProfileFields(t *testing.T) {
	svc, userRepo := setupUserMocks(t)

	stored := models.User{UID: 1, Username: "alice"}
	email := "alice@example.com"
	name := "Alice Chen"

	userRepo.EXPECT().GetUserByID(uint(1)).Return(stored, nil)
	userRepo.EXPECT().SaveUser(gomock.Any()).Return(nil)

	res, err := svc.UpdateUser(1, dto.UpdateUserInput{Email: &email, FullName: &name})

	assert.NoError(t, err)
	assert.Equal(t, email, *res.Email)
	assert.Equal(t, name, *res.FullName)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, userRepo := setupUserMocks(t)

	userRepo.EXPECT().GetUserByID(uint(99)).Return(models.User{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateUser(99, dto.UpdateUserInput{})

	assert.ErrorIs(t, err, ErrUserNotFound)
}
