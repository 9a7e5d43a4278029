package repos

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/coursehub/coursehub/internal/db/models"
)

type CourseRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func TestCourseRepository(t *testing.T) {
	suite.Run(t, new(CourseRepositoryTestSuite))
}

func (s *CourseRepositoryTestSuite) TestCreateAndGet() {
	course := s.createTestCourse("creator-1", models.CourseStatusDraft)
	s.NotZero(course.ID)

	found, err := s.courseRepo.GetByID(s.ctx, course.ID)
	s.NoError(err)
	s.Equal(course.Title, found.Title)
	s.Equal(models.CourseStatusDraft, found.Status)
	s.Equal("creator-1", found.CreatorID)

	// Non-existent course
	_, err = s.courseRepo.GetByID(s.ctx, 9999)
	s.Error(err)
	s.Contains(err.Error(), "course not found")
}

func (s *CourseRepositoryTestSuite) TestListFilters() {
	s.createTestCourse("creator-1", models.CourseStatusPublished)
	s.createTestCourse("creator-1", models.CourseStatusDraft)
	s.createTestCourse("creator-2", models.CourseStatusPublished)

	// No filters returns everything
	courses, total, err := s.courseRepo.List(s.ctx, nil, nil)
	s.NoError(err)
	s.EqualValues(3, total)
	s.Len(courses, 3)

	// Creator filter
	courses, total, err = s.courseRepo.List(s.ctx, &models.CourseFilters{CreatorID: "creator-1"}, nil)
	s.NoError(err)
	s.EqualValues(2, total)
	for _, c := range courses {
		s.Equal("creator-1", c.CreatorID)
	}

	// Status filter
	published := models.CourseStatusPublished
	courses, total, err = s.courseRepo.List(s.ctx, &models.CourseFilters{Status: &published}, nil)
	s.NoError(err)
	s.EqualValues(2, total)
	for _, c := range courses {
		s.Equal(models.CourseStatusPublished, c.Status)
	}

	// Category filter with no matches
	_, total, err = s.courseRepo.List(s.ctx, &models.CourseFilters{Category: "cooking"}, nil)
	s.NoError(err)
	s.EqualValues(0, total)
}

func (s *CourseRepositoryTestSuite) TestListSearch() {
	course := s.createTestCourse("creator-1", models.CourseStatusPublished)
	course.Title = "Distributed Systems in Go"
	s.Require().NoError(s.db.Save(course).Error)
	s.createTestCourse("creator-1", models.CourseStatusPublished)

	// Case-insensitive match against the title
	courses, total, err := s.courseRepo.List(s.ctx, &models.CourseFilters{Search: "dIsTrIbUtEd"}, nil)
	s.NoError(err)
	s.EqualValues(1, total)
	s.Len(courses, 1)
	s.Equal(course.ID, courses[0].ID)

	// Match against the description
	_, total, err = s.courseRepo.List(s.ctx, &models.CourseFilters{Search: "repository tests"}, nil)
	s.NoError(err)
	s.EqualValues(2, total)
}

func (s *CourseRepositoryTestSuite) TestListPagination() {
	for i := 0; i < 5; i++ {
		s.createTestCourse("creator-1", models.CourseStatusPublished)
	}

	courses, total, err := s.courseRepo.List(s.ctx, nil, &models.ListOptions{Limit: 2})
	s.NoError(err)
	s.EqualValues(5, total)
	s.Len(courses, 2)

	// Total reflects all matching rows regardless of the page requested
	courses, total, err = s.courseRepo.List(s.ctx, nil, &models.ListOptions{Limit: 2, Offset: 4})
	s.NoError(err)
	s.EqualValues(5, total)
	s.Len(courses, 1)
}

func (s *CourseRepositoryTestSuite) TestUpdateStatusByOwner() {
	course := s.createTestCourse("creator-1", models.CourseStatusDraft)

	updated, err := s.courseRepo.UpdateStatus(s.ctx, course.ID, models.CourseStatusPublished, "creator-1", false)
	s.NoError(err)
	s.Equal(models.CourseStatusPublished, updated.Status)

	// Any enumerated status may move to any other
	updated, err = s.courseRepo.UpdateStatus(s.ctx, course.ID, models.CourseStatusArchived, "creator-1", false)
	s.NoError(err)
	s.Equal(models.CourseStatusArchived, updated.Status)

	updated, err = s.courseRepo.UpdateStatus(s.ctx, course.ID, models.CourseStatusDraft, "creator-1", false)
	s.NoError(err)
	s.Equal(models.CourseStatusDraft, updated.Status)
}

func (s *CourseRepositoryTestSuite) TestUpdateStatusDenied() {
	course := s.createTestCourse("creator-1", models.CourseStatusDraft)

	// Another creator gets the same answer as a missing course
	_, err := s.courseRepo.UpdateStatus(s.ctx, course.ID, models.CourseStatusPublished, "creator-2", false)
	s.ErrorIs(err, ErrCourseNotFoundOrDenied)

	_, err = s.courseRepo.UpdateStatus(s.ctx, 9999, models.CourseStatusPublished, "creator-1", false)
	s.ErrorIs(err, ErrCourseNotFoundOrDenied)

	// Status unchanged after the denied attempts
	found, err := s.courseRepo.GetByID(s.ctx, course.ID)
	s.NoError(err)
	s.Equal(models.CourseStatusDraft, found.Status)
}

func (s *CourseRepositoryTestSuite) TestUpdateStatusAdminBypass() {
	course := s.createTestCourse("creator-1", models.CourseStatusDraft)

	updated, err := s.courseRepo.UpdateStatus(s.ctx, course.ID, models.CourseStatusPublished, "admin-1", true)
	s.NoError(err)
	s.Equal(models.CourseStatusPublished, updated.Status)

	// Admin still cannot update a course that does not exist
	_, err = s.courseRepo.UpdateStatus(s.ctx, 9999, models.CourseStatusPublished, "admin-1", true)
	s.ErrorIs(err, ErrCourseNotFoundOrDenied)
}
