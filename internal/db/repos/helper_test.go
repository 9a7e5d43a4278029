package repos

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/coursehub/coursehub/internal/db/models"
)

// DBRepositoryTestSuite provides a base test suite for repository tests
type DBRepositoryTestSuite struct {
	suite.Suite
	db             *gorm.DB
	ctx            context.Context
	courseRepo     *CourseRepository
	enrollmentRepo *EnrollmentRepository

	courseSeq int
}

func (s *DBRepositoryTestSuite) SetupTest() {
	// Fresh in-memory database per test
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	err = db.AutoMigrate(&models.Course{}, &models.Enrollment{})
	require.NoError(s.T(), err, "Failed to run database migrations")

	s.db = db
	s.courseRepo = NewCourseRepository(s.db)
	s.enrollmentRepo = NewEnrollmentRepository(s.db)
	s.ctx = context.Background()
	s.courseSeq = 0
}

func (s *DBRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Helper methods for creating test data

func (s *DBRepositoryTestSuite) createTestCourse(creatorID string, status models.CourseStatus) *models.Course {
	s.courseSeq++
	course := &models.Course{
		Title:        fmt.Sprintf("Test Course %d", s.courseSeq),
		Description:  "A course used in repository tests",
		ThumbnailURL: models.DefaultThumbnailURL,
		Category:     "engineering",
		Status:       status,
		CreatorID:    creatorID,
	}
	err := s.courseRepo.Create(s.ctx, course)
	s.Require().NoError(err)
	return course
}

func (s *DBRepositoryTestSuite) createTestEnrollment(userID string, courseID uint) *models.Enrollment {
	enrollment := &models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	err := s.enrollmentRepo.Create(s.ctx, enrollment)
	s.Require().NoError(err)
	return enrollment
}

// TestDBRepository runs the base suite to verify setup does not panic
func TestDBRepository(t *testing.T) {
	suite.Run(t, new(DBRepositoryTestSuite))
}
