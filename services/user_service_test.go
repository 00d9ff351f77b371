package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/repositories"
	"github.com/blogem/radiocalco/repositories/mocks"
	"github.com/blogem/radiocalco/userctx"
)

// UserServiceTestSuite covers the user CRUD rules and their audit entries
type UserServiceTestSuite struct {
	suite.Suite
	service       UserService
	mockUserRepo  *mocks.MockUserRepository
	mockAuditRepo *mocks.MockAuditRepository
	ctx           context.Context
}

// SetupTest sets up the test suite before each test
func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = mocks.NewMockUserRepository(suite.T())
	suite.mockAuditRepo = mocks.NewMockAuditRepository(suite.T())

	logger, _ := test.NewNullLogger()
	audit := NewAuditService(suite.mockAuditRepo, logger, NewMetrics(prometheus.NewRegistry()))
	suite.service = NewUserService(suite.mockUserRepo, audit)
	suite.ctx = userctx.SetClientAddress(context.Background(), "198.51.100.4")
}

// expectAudit captures the next audit entry written
func (suite *UserServiceTestSuite) expectAudit() *models.AuditLogEntry {
	captured := &models.AuditLogEntry{}
	suite.mockAuditRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.AuditLogEntry")).
		Run(func(_ context.Context, entry *models.AuditLogEntry) {
			*captured = *entry
		}).Return(nil).Once()
	return captured
}

func (suite *UserServiceTestSuite) TestGetAllUsers() {
	users := []models.User{{ID: 2, Name: "Bo"}, {ID: 1, Name: "Al"}}
	suite.mockUserRepo.EXPECT().GetAll(suite.ctx).Return(users, nil)

	result, err := suite.service.GetAllUsers(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), users, result)
}

func (suite *UserServiceTestSuite) TestGetAllUsers_StoreError() {
	suite.mockUserRepo.EXPECT().GetAll(suite.ctx).Return(nil, errors.New("connection refused"))

	_, err := suite.service.GetAllUsers(suite.ctx)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "connection refused")
}

func (suite *UserServiceTestSuite) TestGetUserByID_InvalidID() {
	_, err := suite.service.GetUserByID(suite.ctx, 0)
	assert.ErrorIs(suite.T(), err, ErrInvalidID)

	_, err = suite.service.GetUserByID(suite.ctx, -3)
	assert.ErrorIs(suite.T(), err, ErrInvalidID)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, int64(99)).
		Return(nil, fmt.Errorf("user with ID 99: %w", repositories.ErrNotFound))

	_, err := suite.service.GetUserByID(suite.ctx, 99)

	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *UserServiceTestSuite) TestCreateUser_RecordsAudit() {
	suite.mockUserRepo.EXPECT().Create(suite.ctx, mock.AnythingOfType("*models.User")).
		Run(func(_ context.Context, user *models.User) {
			user.ID = 7
			user.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		}).Return(nil)
	entry := suite.expectAudit()

	user, err := suite.service.CreateUser(suite.ctx, &models.UserForm{Name: "Ann", Email: "ann@x.io"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), user.ID)
	assert.Equal(suite.T(), models.AuditCreate, entry.Action)
	assert.Equal(suite.T(), models.EntityUser, entry.EntityType)
	assert.Equal(suite.T(), int64(7), entry.EntityID)
	assert.Equal(suite.T(), "Ann", entry.UserName)
	assert.Equal(suite.T(), "ann@x.io", entry.UserEmail)
	assert.Equal(suite.T(), "198.51.100.4", entry.IPAddress)
	assert.NotEmpty(suite.T(), entry.EventID)
	assert.JSONEq(suite.T(), `{"name":"Ann","email":"ann@x.io"}`, string(entry.Changes))
}

func (suite *UserServiceTestSuite) TestCreateUser_MissingFields() {
	_, err := suite.service.CreateUser(suite.ctx, &models.UserForm{Name: "Ann"})

	assert.ErrorIs(suite.T(), err, ErrMissingFields)
	assert.Contains(suite.T(), err.Error(), "email")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	suite.mockUserRepo.EXPECT().Create(suite.ctx, mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("email ann@x.io: %w", repositories.ErrDuplicate))

	_, err := suite.service.CreateUser(suite.ctx, &models.UserForm{Name: "Ann", Email: "ann@x.io"})

	assert.ErrorIs(suite.T(), err, ErrDuplicateEmail)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_AuditFailureIsSwallowed() {
	suite.mockUserRepo.EXPECT().Create(suite.ctx, mock.AnythingOfType("*models.User")).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	user, err := suite.service.CreateUser(suite.ctx, &models.UserForm{Name: "Ann", Email: "ann@x.io"})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), user)
}

func (suite *UserServiceTestSuite) TestUpdateUser_RecordsBeforeAndAfter() {
	existing := &models.User{ID: 3, Name: "Old", Email: "old@x.io"}
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, int64(3)).Return(existing, nil)
	suite.mockUserRepo.EXPECT().Update(suite.ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == 3 && u.Name == "New" && u.Email == "new@x.io"
	})).Return(nil)
	entry := suite.expectAudit()

	user, err := suite.service.UpdateUser(suite.ctx, 3, &models.UserForm{Name: "New", Email: "new@x.io"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New", user.Name)
	assert.Equal(suite.T(), models.AuditUpdate, entry.Action)
	assert.Equal(suite.T(), "New", entry.UserName)

	var changes struct {
		Before models.UserFields `json:"before"`
		After  models.UserFields `json:"after"`
	}
	assert.NoError(suite.T(), json.Unmarshal(entry.Changes, &changes))
	assert.Equal(suite.T(), models.UserFields{Name: "Old", Email: "old@x.io"}, changes.Before)
	assert.Equal(suite.T(), models.UserFields{Name: "New", Email: "new@x.io"}, changes.After)
}

func (suite *UserServiceTestSuite) TestUpdateUser_InvalidIDCheckedFirst() {
	_, err := suite.service.UpdateUser(suite.ctx, 0, &models.UserForm{})

	assert.ErrorIs(suite.T(), err, ErrInvalidID)
}

func (suite *UserServiceTestSuite) TestUpdateUser_NotFound() {
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, int64(5)).Return(nil, repositories.ErrNotFound)

	_, err := suite.service.UpdateUser(suite.ctx, 5, &models.UserForm{Name: "N", Email: "n@x.io"})

	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

func (suite *UserServiceTestSuite) TestUpdateUser_DuplicateEmail() {
	suite.mockUserRepo.EXPECT().GetByID(suite.ctx, int64(5)).Return(&models.User{ID: 5}, nil)
	suite.mockUserRepo.EXPECT().Update(suite.ctx, mock.Anything).Return(repositories.ErrDuplicate)

	_, err := suite.service.UpdateUser(suite.ctx, 5, &models.UserForm{Name: "N", Email: "taken@x.io"})

	assert.ErrorIs(suite.T(), err, ErrDuplicateEmail)
}

func (suite *UserServiceTestSuite) TestDeleteUser_RecordsSnapshot() {
	deleted := &models.User{ID: 4, Name: "Gone", Email: "gone@x.io"}
	suite.mockUserRepo.EXPECT().Delete(suite.ctx, int64(4)).Return(deleted, nil)
	entry := suite.expectAudit()

	user, err := suite.service.DeleteUser(suite.ctx, 4)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), deleted, user)
	assert.Equal(suite.T(), models.AuditDelete, entry.Action)
	assert.Equal(suite.T(), "Gone", entry.UserName)
	assert.JSONEq(suite.T(), `{"name":"Gone","email":"gone@x.io"}`, string(entry.Changes))
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	suite.mockUserRepo.EXPECT().Delete(suite.ctx, int64(4)).Return(nil, repositories.ErrNotFound)

	_, err := suite.service.DeleteUser(suite.ctx, 4)

	assert.ErrorIs(suite.T(), err, ErrNotFound)
}

// TestUserServiceTestSuite runs the user service test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
