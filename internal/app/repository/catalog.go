package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"github.com/supchaser/quiz_client/internal/utils/validate"
	"go.uber.org/zap"
)

// CatalogRepository keeps the stub backend's catalog in memory. It stores
// what it is sent; answers are never graded.
type CatalogRepository struct {
	areas     map[int64]*models.Area
	topics    map[int64]*models.Topic
	questions map[int64]*models.Question
	courses   map[int64]*models.Course
	teachers  map[string]*models.Teacher
	answers   map[int64]*models.QuizAnswer
	results   map[int64]*models.QuizResultSummary
	lastID    int64
	mu        sync.Mutex
}

func CreateCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		areas:     make(map[int64]*models.Area),
		topics:    make(map[int64]*models.Topic),
		questions: make(map[int64]*models.Question),
		courses:   make(map[int64]*models.Course),
		teachers:  make(map[string]*models.Teacher),
		answers:   make(map[int64]*models.QuizAnswer),
		results:   make(map[int64]*models.QuizResultSummary),
	}
}

// CreateSeededCatalogRepository starts with a few areas and teachers so the
// stub is usable right away.
func CreateSeededCatalogRepository() *CatalogRepository {
	r := CreateCatalogRepository()
	for _, name := range []string{"Matemática", "Comunicación", "Ciencia y Tecnología"} {
		r.AddArea(models.Area{Name: name})
	}
	r.AddTeacher(models.Teacher{ID: "docente-1", InstitutionID: 1, Name: "Rosa Quispe", Email: "rosa@example.com"})
	r.AddTeacher(models.Teacher{ID: "docente-2", InstitutionID: 1, Name: "Luis Huamán", Email: "luis@example.com"})
	return r
}

func (r *CatalogRepository) nextIDLocked() int64 {
	r.lastID++
	return r.lastID
}

func (r *CatalogRepository) AddArea(area models.Area) models.Area {
	r.mu.Lock()
	defer r.mu.Unlock()

	area.ID = r.nextIDLocked()
	r.areas[area.ID] = &area
	return area
}

func (r *CatalogRepository) AddTeacher(teacher models.Teacher) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teachers[teacher.ID] = &teacher
}

func (r *CatalogRepository) ListAreas(ctx context.Context) ([]models.Area, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	areas := make([]models.Area, 0, len(r.areas))
	for _, a := range r.areas {
		areas = append(areas, *a)
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].ID < areas[j].ID })

	return areas, nil
}

func (r *CatalogRepository) GetArea(ctx context.Context, id int64) (*models.Area, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	area, exists := r.areas[id]
	if !exists {
		return nil, fmt.Errorf("area %d: %w", id, errs.ErrNotFound)
	}

	copied := *area
	return &copied, nil
}

func (r *CatalogRepository) ListTopics(ctx context.Context, areaID int64) ([]models.Topic, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.areas[areaID]; !exists {
		return nil, fmt.Errorf("area %d: %w", areaID, errs.ErrNotFound)
	}

	topics := make([]models.Topic, 0)
	for _, t := range r.topics {
		if t.AreaID == areaID {
			topics = append(topics, *t)
		}
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })

	return topics, nil
}

func (r *CatalogRepository) CreateTopic(ctx context.Context, areaID int64, name string) (*models.Topic, error) {
	const funcName = "CatalogRepository.CreateTopic"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.areas[areaID]; !exists {
		logger.Warn("topic references unknown area",
			zap.String("function", funcName),
			zap.Int64("area_id", areaID),
		)
		return nil, fmt.Errorf("%w: area %d", errs.ErrInvalidReference, areaID)
	}

	topic := &models.Topic{ID: r.nextIDLocked(), AreaID: areaID, Name: name}
	r.topics[topic.ID] = topic

	logger.Info("topic created successfully",
		zap.String("function", funcName),
		zap.Int64("topic_id", topic.ID),
		zap.Int64("area_id", areaID),
	)

	copied := *topic
	return &copied, nil
}

func (r *CatalogRepository) ListQuestions(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	questions := make([]models.Question, 0)
	for _, q := range r.questions {
		if filter.AreaID > 0 && q.AreaID != filter.AreaID {
			continue
		}
		if filter.TopicID > 0 && (q.TopicID == nil || *q.TopicID != filter.TopicID) {
			continue
		}
		questions = append(questions, *q)
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })

	return questions, nil
}

func (r *CatalogRepository) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, exists := r.questions[id]
	if !exists {
		return nil, fmt.Errorf("question %d: %w", id, errs.ErrNotFound)
	}

	copied := *q
	return &copied, nil
}

// SaveQuestion inserts q when it has no ID and replaces the stored question
// otherwise.
func (r *CatalogRepository) SaveQuestion(ctx context.Context, q models.Question) (*models.Question, error) {
	const funcName = "CatalogRepository.SaveQuestion"

	if err := validate.ValidateQuestion(q); err != nil {
		logger.Warn("invalid question",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.areas[q.AreaID]; !exists {
		return nil, fmt.Errorf("%w: area %d", errs.ErrInvalidReference, q.AreaID)
	}
	if q.TopicID != nil {
		topic, exists := r.topics[*q.TopicID]
		if !exists || topic.AreaID != q.AreaID {
			return nil, fmt.Errorf("%w: topic %d in area %d", errs.ErrInvalidReference, *q.TopicID, q.AreaID)
		}
	}

	if q.ID == 0 {
		q.ID = r.nextIDLocked()
	} else if _, exists := r.questions[q.ID]; !exists {
		return nil, fmt.Errorf("question %d: %w", q.ID, errs.ErrNotFound)
	}

	for i := range q.Options {
		if q.Options[i].ID == 0 {
			q.Options[i].ID = r.nextIDLocked()
		}
	}

	stored := q
	stored.Options = append([]models.Option(nil), q.Options...)
	r.questions[q.ID] = &stored

	logger.Info("question saved successfully",
		zap.String("function", funcName),
		zap.Int64("question_id", q.ID),
		zap.Int64("area_id", q.AreaID),
		zap.Int("options", len(q.Options)),
	)

	return &q, nil
}

func (r *CatalogRepository) ListCourses(ctx context.Context, institutionID int64) ([]models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses := make([]models.Course, 0)
	for _, c := range r.courses {
		if c.InstitutionID == institutionID {
			courses = append(courses, *c)
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })

	return courses, nil
}

func (r *CatalogRepository) ListTeachers(ctx context.Context, institutionID int64) ([]models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	teachers := make([]models.Teacher, 0)
	for _, t := range r.teachers {
		if t.InstitutionID == institutionID {
			teachers = append(teachers, *t)
		}
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })

	return teachers, nil
}

func (r *CatalogRepository) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	const funcName = "CatalogRepository.CreateCourse"

	r.mu.Lock()
	defer r.mu.Unlock()

	if req.TeacherID != "" {
		teacher, exists := r.teachers[req.TeacherID]
		if !exists || teacher.InstitutionID != req.InstitutionID {
			return nil, fmt.Errorf("%w: teacher %s", errs.ErrInvalidReference, req.TeacherID)
		}
	}

	course := &models.Course{
		ID:            r.nextIDLocked(),
		InstitutionID: req.InstitutionID,
		Name:          req.Name,
		TeacherID:     req.TeacherID,
		Enabled:       true,
	}
	r.courses[course.ID] = course

	logger.Info("course created successfully",
		zap.String("function", funcName),
		zap.Int64("course_id", course.ID),
		zap.Int64("institution_id", course.InstitutionID),
	)

	copied := *course
	return &copied, nil
}

func (r *CatalogRepository) SetCourseEnabled(ctx context.Context, id int64, enabled bool) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course, exists := r.courses[id]
	if !exists {
		return nil, fmt.Errorf("course %d: %w", id, errs.ErrNotFound)
	}
	course.Enabled = enabled

	copied := *course
	return &copied, nil
}

func (r *CatalogRepository) SaveAnswer(ctx context.Context, answer models.QuizAnswer) (*models.AnswerReceipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.questions[answer.QuestionID]; !exists {
		return nil, fmt.Errorf("%w: question %d", errs.ErrInvalidReference, answer.QuestionID)
	}

	id := r.nextIDLocked()
	r.answers[id] = &answer

	return &models.AnswerReceipt{ID: id}, nil
}

func (r *CatalogRepository) SaveResult(ctx context.Context, result models.QuizResult) (*models.QuizResultSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summary := &models.QuizResultSummary{
		ID:          r.nextIDLocked(),
		QuizID:      result.QuizID,
		UserID:      result.UserID,
		Correct:     result.Correct,
		Total:       result.Total,
		SubmittedAt: time.Now(),
	}
	r.results[summary.ID] = summary

	copied := *summary
	return &copied, nil
}

func (r *CatalogRepository) ListResults(ctx context.Context, userID string) ([]models.QuizResultSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]models.QuizResultSummary, 0)
	for _, s := range r.results {
		if s.UserID == userID {
			results = append(results, *s)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return results, nil
}
