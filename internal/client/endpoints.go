package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/upload"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
)

// Catalog

func (c *Client) ListAreas(ctx context.Context) ([]models.Area, error) {
	var areas []models.Area
	if err := c.getJSON(ctx, "list_areas", "/areas", &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

func (c *Client) ListTopics(ctx context.Context, areaID int64) ([]models.Topic, error) {
	var topics []models.Topic
	path := fmt.Sprintf("/areas/%d/temas", areaID)
	if err := c.getJSON(ctx, "list_topics", path, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (c *Client) CreateTopic(ctx context.Context, req models.CreateTopicRequest) (*models.Topic, error) {
	var topic models.Topic
	if err := c.sendJSON(ctx, "create_topic", http.MethodPost, "/temas", req, &topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

func (c *Client) ListQuestions(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error) {
	query := url.Values{}
	if filter.AreaID > 0 {
		query.Set("id_area", strconv.FormatInt(filter.AreaID, 10))
	}
	if filter.TopicID > 0 {
		query.Set("id_tema", strconv.FormatInt(filter.TopicID, 10))
	}

	path := "/preguntas"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var questions []models.Question
	if err := c.getJSON(ctx, "list_questions", path, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) GetQuestion(ctx context.Context, id int64) (*models.Question, error) {
	var question models.Question
	if err := c.getJSON(ctx, "get_question", fmt.Sprintf("/preguntas/%d", id), &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (c *Client) CreateQuestion(ctx context.Context, body *upload.Request) (*models.Question, error) {
	var question models.Question
	if err := c.sendMultipart(ctx, "create_question", http.MethodPost, "/preguntas", body, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

func (c *Client) EditQuestion(ctx context.Context, id int64, body *upload.Request) (*models.Question, error) {
	var question models.Question
	path := fmt.Sprintf("/preguntas/%d", id)
	if err := c.sendMultipart(ctx, "edit_question", http.MethodPut, path, body, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// Batch

// CreateQuestionBatch submits a batch. A 201 carries the created questions;
// a 202 only acknowledges the job, which then has to be settled by a poller.
func (c *Client) CreateQuestionBatch(ctx context.Context, body *upload.Request) (*models.BatchResult, error) {
	const funcName = "Client.CreateQuestionBatch"

	resp, err := c.doMultipart(ctx, "create_question_batch", http.MethodPost, "/preguntas/lote", body)
	if err != nil {
		return nil, err
	}

	if resp.status == http.StatusAccepted {
		var accepted models.AcceptedResponse
		if err := decode(resp, &accepted); err != nil && !errors.Is(err, errs.ErrEncoding) {
			return nil, err
		}

		op := c.longOperation(accepted)
		logger.Info("batch accepted for background processing",
			zap.String("function", funcName),
			zap.String("operation_id", op.ID),
			zap.String("status_url", op.StatusURL),
		)

		return &models.BatchResult{Accepted: true, Operation: op}, nil
	}

	var created models.BatchCreatedResponse
	if err := decode(resp, &created); err != nil {
		return nil, err
	}
	if created.Created == 0 {
		created.Created = len(created.Questions)
	}

	logger.Info("batch created",
		zap.String("function", funcName),
		zap.Int("created", created.Created),
	)

	return &models.BatchResult{Questions: created.Questions, Created: created.Created}, nil
}

// longOperation turns a 202 body into a LongOperation. Backends that
// acknowledge without an id still get a trackable one.
func (c *Client) longOperation(accepted models.AcceptedResponse) models.LongOperation {
	id := accepted.OperationID
	if id == "" {
		id = uuid.NewString()
	}

	statusURL := accepted.StatusURL
	if statusURL == "" {
		statusURL = c.baseURL + "/preguntas/lote/" + url.PathEscape(id)
	}

	return models.LongOperation{ID: id, StatusURL: statusURL, AcceptedAt: time.Now()}
}

func (c *Client) GetBatchStatus(ctx context.Context, operationID string) (*models.BatchStatus, error) {
	var status models.BatchStatus
	path := "/preguntas/lote/" + url.PathEscape(operationID)
	if err := c.getJSON(ctx, "get_batch_status", path, &status); err != nil {
		return nil, err
	}
	if status.OperationID == "" {
		status.OperationID = operationID
	}
	return &status, nil
}

// Institution

func (c *Client) ListCourses(ctx context.Context, institutionID int64) ([]models.Course, error) {
	var courses []models.Course
	path := fmt.Sprintf("/instituciones/%d/cursos", institutionID)
	if err := c.getJSON(ctx, "list_courses", path, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) ListTeachers(ctx context.Context, institutionID int64) ([]models.Teacher, error) {
	var teachers []models.Teacher
	path := fmt.Sprintf("/instituciones/%d/docentes", institutionID)
	if err := c.getJSON(ctx, "list_teachers", path, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (c *Client) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.sendJSON(ctx, "create_course", http.MethodPost, "/cursos", req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) SetCourseEnabled(ctx context.Context, courseID int64, enabled bool) (*models.Course, error) {
	var course models.Course
	path := fmt.Sprintf("/cursos/%d/habilitado", courseID)
	req := models.SetCourseEnabledRequest{Enabled: enabled}
	if err := c.sendJSON(ctx, "set_course_enabled", http.MethodPatch, path, req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Quiz

func (c *Client) SubmitAnswer(ctx context.Context, answer models.QuizAnswer) (*models.AnswerReceipt, error) {
	var receipt models.AnswerReceipt
	if err := c.sendJSON(ctx, "submit_answer", http.MethodPost, "/quiz/respuestas", answer, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *Client) SubmitResult(ctx context.Context, result models.QuizResult) (*models.QuizResultSummary, error) {
	var summary models.QuizResultSummary
	if err := c.sendJSON(ctx, "submit_result", http.MethodPost, "/quiz/resultados", result, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) ListResults(ctx context.Context, userID string) ([]models.QuizResultSummary, error) {
	var results []models.QuizResultSummary
	path := "/usuarios/" + url.PathEscape(userID) + "/resultados"
	if err := c.getJSON(ctx, "list_results", path, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Multipart

func (c *Client) doMultipart(ctx context.Context, endpoint, method, path string, body *upload.Request) (*response, error) {
	payload, contentType, err := body.Encode()
	if err != nil {
		return nil, err
	}
	return c.do(ctx, c.uploadClient, endpoint, method, path, payload, contentType)
}

func (c *Client) sendMultipart(ctx context.Context, endpoint, method, path string, body *upload.Request, out any) error {
	resp, err := c.doMultipart(ctx, endpoint, method, path, body)
	if err != nil {
		return err
	}
	return decode(resp, out)
}
