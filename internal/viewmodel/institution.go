package viewmodel

import (
	"context"

	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/runner"
	"github.com/supchaser/quiz_client/internal/state"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type InstitutionData struct {
	Courses  []models.Course
	Teachers []models.Teacher
}

// Institution backs the course and teacher administration screen.
type Institution struct {
	scope  *runner.Scope
	api    app.InstitutionAPI
	data   *runner.Runner[InstitutionData]
	course *runner.Runner[*models.Course]

	enabled state.Source[[]models.Course]
}

func NewInstitution(ctx context.Context, api app.InstitutionAPI) *Institution {
	scope := runner.NewScope(ctx)
	i := &Institution{
		scope:  scope,
		api:    api,
		data:   runner.New(scope, "institution", state.NewRequestStore[InstitutionData]()),
		course: runner.New(scope, "course_save", state.NewRequestStore[*models.Course]()),
	}
	i.enabled = state.Map(i.data.State(), enabledCourses)

	return i
}

func (i *Institution) Data() state.Source[state.RequestState[InstitutionData]] {
	return i.data.State()
}

func (i *Institution) CourseSave() state.Source[state.RequestState[*models.Course]] {
	return i.course.State()
}

// EnabledCourses lists the loaded courses that are currently enabled.
func (i *Institution) EnabledCourses() state.Source[[]models.Course] {
	return i.enabled
}

// Load fetches courses and teachers concurrently; either failure fails the slot.
func (i *Institution) Load(institutionID int64) *runner.Handle {
	const funcName = "Institution.Load"

	return i.data.Run(func(ctx context.Context) (InstitutionData, error) {
		var data InstitutionData

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			courses, err := i.api.ListCourses(gctx, institutionID)
			if err != nil {
				return err
			}
			data.Courses = courses
			return nil
		})
		g.Go(func() error {
			teachers, err := i.api.ListTeachers(gctx, institutionID)
			if err != nil {
				return err
			}
			data.Teachers = teachers
			return nil
		})

		if err := g.Wait(); err != nil {
			return InstitutionData{}, err
		}

		logger.Debug("institution loaded",
			zap.String("function", funcName),
			zap.Int64("institution_id", institutionID),
			zap.Int("courses", len(data.Courses)),
			zap.Int("teachers", len(data.Teachers)),
		)

		return data, nil
	})
}

func (i *Institution) CreateCourse(req models.CreateCourseRequest) *runner.Handle {
	return i.course.Run(func(ctx context.Context) (*models.Course, error) {
		course, err := i.api.CreateCourse(ctx, req)
		if err != nil {
			return nil, err
		}

		i.Load(req.InstitutionID).Wait()
		return course, nil
	})
}

// SetCourseEnabled toggles a course and reloads the institution it belongs to.
func (i *Institution) SetCourseEnabled(institutionID, courseID int64, enabled bool) *runner.Handle {
	return i.course.Run(func(ctx context.Context) (*models.Course, error) {
		course, err := i.api.SetCourseEnabled(ctx, courseID, enabled)
		if err != nil {
			return nil, err
		}

		i.Load(institutionID).Wait()
		return course, nil
	})
}

func (i *Institution) Close() {
	i.scope.Close()
}

func enabledCourses(s state.RequestState[InstitutionData]) []models.Course {
	if !s.IsSuccess() {
		return nil
	}

	var courses []models.Course
	for _, c := range s.Value.Courses {
		if c.Enabled {
			courses = append(courses, c)
		}
	}
	return courses
}
