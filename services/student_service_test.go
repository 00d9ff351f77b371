package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/repositories"
	"github.com/blogem/radiocalco/repositories/mocks"
)

type StudentServiceTestSuite struct {
	suite.Suite
	service         StudentService
	mockStudentRepo *mocks.MockStudentRepository
	mockAuditRepo   *mocks.MockAuditRepository
}

func (suite *StudentServiceTestSuite) SetupTest() {
	suite.mockStudentRepo = mocks.NewMockStudentRepository(suite.T())
	suite.mockAuditRepo = mocks.NewMockAuditRepository(suite.T())

	logger, _ := test.NewNullLogger()
	audit := NewAuditService(suite.mockAuditRepo, logger, NewMetrics(nil))
	suite.service = NewStudentService(suite.mockStudentRepo, audit)
}

func (suite *StudentServiceTestSuite) TestRegisterStudent_EmptyMajorIsNull() {
	ctx := context.Background()
	suite.mockStudentRepo.EXPECT().Create(ctx, mock.MatchedBy(func(s *models.Student) bool {
		return s.Major == nil && s.Grade == "A"
	})).Run(func(_ context.Context, s *models.Student) {
		s.ID = 11
	}).Return(nil)

	var changes string
	suite.mockAuditRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entry *models.AuditLogEntry) {
			assert.Equal(suite.T(), models.EntityStudent, entry.EntityType)
			assert.Equal(suite.T(), int64(11), entry.EntityID)
			changes = string(entry.Changes)
		}).Return(nil)

	student, err := suite.service.RegisterStudent(ctx, &models.StudentForm{Name: "Sam", Email: "sam@x.io", Grade: "A"})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), student.Major)
	assert.JSONEq(suite.T(), `{"name":"Sam","email":"sam@x.io","grade":"A","major":null}`, changes)
}

func (suite *StudentServiceTestSuite) TestRegisterStudent_MissingGrade() {
	_, err := suite.service.RegisterStudent(context.Background(), &models.StudentForm{Name: "Sam", Email: "sam@x.io"})

	assert.ErrorIs(suite.T(), err, ErrMissingFields)
	assert.Contains(suite.T(), err.Error(), "grade")
}

func (suite *StudentServiceTestSuite) TestRegisterStudent_DuplicateEmail() {
	ctx := context.Background()
	suite.mockStudentRepo.EXPECT().Create(ctx, mock.Anything).Return(repositories.ErrDuplicate)

	_, err := suite.service.RegisterStudent(ctx, &models.StudentForm{Name: "Sam", Email: "sam@x.io", Grade: "A"})

	assert.ErrorIs(suite.T(), err, ErrDuplicateEmail)
}

func (suite *StudentServiceTestSuite) TestUpdateStudent_OmittedMajorClearsIt() {
	ctx := context.Background()
	major := "Physics"
	suite.mockStudentRepo.EXPECT().GetByID(ctx, int64(2)).
		Return(&models.Student{ID: 2, Name: "Sam", Email: "sam@x.io", Grade: "A", Major: &major}, nil)
	suite.mockStudentRepo.EXPECT().Update(ctx, mock.MatchedBy(func(s *models.Student) bool {
		return s.ID == 2 && s.Major == nil && s.Grade == "B"
	})).Return(nil)
	suite.mockAuditRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entry *models.AuditLogEntry) {
			assert.Equal(suite.T(), models.AuditUpdate, entry.Action)
			assert.JSONEq(suite.T(),
				`{"before":{"name":"Sam","email":"sam@x.io","grade":"A","major":"Physics"},`+
					`"after":{"name":"Sam","email":"sam@x.io","grade":"B","major":null}}`,
				string(entry.Changes))
		}).Return(nil)

	student, err := suite.service.UpdateStudent(ctx, 2, &models.StudentForm{Name: "Sam", Email: "sam@x.io", Grade: "B"})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), student.Major)
}

func (suite *StudentServiceTestSuite) TestGetStudentByID_InvalidID() {
	_, err := suite.service.GetStudentByID(context.Background(), -1)

	assert.ErrorIs(suite.T(), err, ErrInvalidID)
}

func (suite *StudentServiceTestSuite) TestDeleteStudent_NotFound() {
	ctx := context.Background()
	suite.mockStudentRepo.EXPECT().Delete(ctx, int64(8)).Return(nil, repositories.ErrNotFound)

	_, err := suite.service.DeleteStudent(ctx, 8)

	assert.ErrorIs(suite.T(), err, ErrNotFound)
	suite.mockAuditRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *StudentServiceTestSuite) TestDeleteStudent_RecordsSnapshot() {
	ctx := context.Background()
	suite.mockStudentRepo.EXPECT().Delete(ctx, int64(8)).
		Return(&models.Student{ID: 8, Name: "Kim", Email: "kim@x.io", Grade: "C"}, nil)
	suite.mockAuditRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, entry *models.AuditLogEntry) {
			assert.Equal(suite.T(), models.AuditDelete, entry.Action)
			assert.Equal(suite.T(), "kim@x.io", entry.UserEmail)
		}).Return(nil)

	student, err := suite.service.DeleteStudent(ctx, 8)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Kim", student.Name)
}

func TestStudentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceTestSuite))
}
