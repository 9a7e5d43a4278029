package services

import (
	"context"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/coursehub/coursehub/internal/db/models"
	"github.com/coursehub/coursehub/internal/db/repos"
)

// ServiceTestSuite provides a base test suite for service tests backed by
// an in-memory database
type ServiceTestSuite struct {
	suite.Suite
	db          *gorm.DB
	ctx         context.Context
	courses     *Course
	enrollments *Enrollment
}

func (s *ServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	err = db.AutoMigrate(&models.Course{}, &models.Enrollment{})
	require.NoError(s.T(), err, "Failed to run database migrations")

	courseRepo := repos.NewCourseRepository(db)
	enrollmentRepo := repos.NewEnrollmentRepository(db)

	s.db = db
	s.ctx = context.Background()
	s.courses = NewCourseService(courseRepo)
	s.enrollments = NewEnrollmentService(enrollmentRepo, courseRepo)
}

func (s *ServiceTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

func (s *ServiceTestSuite) seedCourse(creatorID string, status models.CourseStatus) *models.Course {
	course := &models.Course{
		Title:        "Seeded Course",
		Description:  "A course seeded for service tests",
		ThumbnailURL: models.DefaultThumbnailURL,
		Category:     "engineering",
		Status:       status,
		CreatorID:    creatorID,
	}
	s.Require().NoError(s.db.Create(course).Error)
	return course
}
