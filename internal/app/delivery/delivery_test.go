package delivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	mock_app "github.com/supchaser/quiz_client/internal/app/mocks"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/upload"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	os.Exit(m.Run())
}

func multipartRequest(t *testing.T, method, target string, body *upload.Request) *http.Request {
	t.Helper()

	data, contentType, err := body.Encode()
	assert.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", contentType)
	return req
}

func sampleItem() models.UploadBatchItem {
	return models.UploadBatchItem{
		Statement:  "2 + 2?",
		Difficulty: "facil",
		AreaID:     1,
		Options: []models.BatchOption{
			{Text: "4", Correct: true, Image: &models.Attachment{Filename: "four.png", Data: []byte("png")}},
			{Text: "5"},
		},
		Image: &models.Attachment{Filename: "sum.jpg", Data: []byte("jpg")},
	}
}

func TestQuizDelivery_CreateQuestionBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mock_app.NewMockCatalogRepository(ctrl)
	mockBatch := mock_app.NewMockBatchUsecase(ctrl)
	quizDelivery := CreateQuizDelivery(mockCatalog, mockBatch)

	tests := []struct {
		name             string
		mockSetup        func()
		expectedStatus   int
		validateResponse func(t *testing.T, body []byte)
	}{
		{
			name: "Accepted",
			mockSetup: func() {
				mockBatch.EXPECT().
					SubmitBatch(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, questions []models.Question) (*models.BatchJob, error) {
						assert.Len(t, questions, 1)
						assert.Equal(t, "2 + 2?", questions[0].Statement)
						assert.Contains(t, questions[0].ImageURL, "sum.jpg")
						assert.Contains(t, questions[0].Options[0].ImageURL, "four.png")
						assert.Empty(t, questions[0].Options[1].ImageURL)
						return &models.BatchJob{ID: "op-1", Status: models.BatchPending}, nil
					})
			},
			expectedStatus: http.StatusAccepted,
			validateResponse: func(t *testing.T, body []byte) {
				var accepted models.AcceptedResponse
				err := json.Unmarshal(body, &accepted)
				assert.NoError(t, err)
				assert.Equal(t, "op-1", accepted.OperationID)
				assert.Equal(t, models.BatchPending, accepted.Status)
				assert.True(t, strings.HasSuffix(accepted.StatusURL, "/preguntas/lote/op-1"))
			},
		},
		{
			name: "MaxJobsReached",
			mockSetup: func() {
				mockBatch.EXPECT().
					SubmitBatch(gomock.Any(), gomock.Any()).
					Return(nil, errs.ErrMaxJobsReached)
				mockBatch.EXPECT().
					GetMaxJobs().
					Return(3)
				mockBatch.EXPECT().
					GetActiveJobsCount().
					Return(3)
			},
			expectedStatus: http.StatusTooManyRequests,
			validateResponse: func(t *testing.T, body []byte) {
				var response map[string]interface{}
				err := json.Unmarshal(body, &response)
				assert.NoError(t, err)
				assert.Equal(t, errs.ErrMaxJobsReached.Error(), response["error"])
				assert.Equal(t, float64(3), response["max_jobs"])
				assert.Equal(t, float64(3), response["active_now"])
			},
		},
		{
			name: "EmptyBatch",
			mockSetup: func() {
				mockBatch.EXPECT().
					SubmitBatch(gomock.Any(), gomock.Any()).
					Return(nil, errs.ErrEmptyBatch)
			},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), errs.ErrEmptyBatch.Error())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			body, err := upload.Build([]models.UploadBatchItem{sampleItem()})
			assert.NoError(t, err)

			req := multipartRequest(t, "POST", "/api/v1/preguntas/lote", body)
			w := httptest.NewRecorder()

			quizDelivery.CreateQuestionBatch(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w.Body.Bytes())
		})
	}
}

func TestQuizDelivery_CreateQuestionBatch_BadForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizDelivery := CreateQuizDelivery(mock_app.NewMockCatalogRepository(ctrl), mock_app.NewMockBatchUsecase(ctrl))

	tests := []struct {
		name string
		body *upload.Request
	}{
		{
			name: "MissingData",
			body: &upload.Request{Parts: []upload.Part{
				{Name: "pregunta_0", Filename: "a.png", ContentType: "image/png", Data: []byte("x")},
			}},
		},
		{
			name: "MalformedData",
			body: &upload.Request{Parts: []upload.Part{
				{Name: "data", ContentType: "application/json", Data: []byte("{")},
			}},
		},
		{
			name: "WrongImageType",
			body: &upload.Request{Parts: []upload.Part{
				{Name: "data", ContentType: "application/json", Data: []byte(`{"preguntas":[]}`)},
				{Name: "pregunta_0", Filename: "notes.txt", ContentType: "text/plain", Data: []byte("x")},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := multipartRequest(t, "POST", "/api/v1/preguntas/lote", tt.body)
			w := httptest.NewRecorder()

			quizDelivery.CreateQuestionBatch(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestQuizDelivery_GetBatchStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBatch := mock_app.NewMockBatchUsecase(ctrl)
	quizDelivery := CreateQuizDelivery(mock_app.NewMockCatalogRepository(ctrl), mockBatch)

	tests := []struct {
		name           string
		jobID          string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:  "Success",
			jobID: "op-1",
			mockSetup: func() {
				mockBatch.EXPECT().
					GetJobStatus(gomock.Any(), "op-1").
					Return(&models.BatchStatus{OperationID: "op-1", Status: models.BatchCompleted, Created: 2}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "NotFound",
			jobID: "missing",
			mockSetup: func() {
				mockBatch.EXPECT().
					GetJobStatus(gomock.Any(), "missing").
					Return(nil, errs.ErrJobNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest("GET", "/api/v1/preguntas/lote/"+tt.jobID, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.jobID})
			w := httptest.NewRecorder()

			quizDelivery.GetBatchStatus(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestQuizDelivery_CreateQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mock_app.NewMockCatalogRepository(ctrl)
	quizDelivery := CreateQuizDelivery(mockCatalog, mock_app.NewMockBatchUsecase(ctrl))

	mockCatalog.EXPECT().
		SaveQuestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q models.Question) (*models.Question, error) {
			assert.Zero(t, q.ID)
			assert.Contains(t, q.ImageURL, "sum.jpg")
			assert.Contains(t, q.Options[0].ImageURL, "four.png")
			q.ID = 7
			return &q, nil
		})

	body, err := upload.BuildQuestion(sampleItem())
	assert.NoError(t, err)

	req := multipartRequest(t, "POST", "/api/v1/preguntas", body)
	w := httptest.NewRecorder()

	quizDelivery.CreateQuestion(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var question models.Question
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &question))
	assert.Equal(t, int64(7), question.ID)
}

func TestQuizDelivery_EditQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mock_app.NewMockCatalogRepository(ctrl)
	quizDelivery := CreateQuizDelivery(mockCatalog, mock_app.NewMockBatchUsecase(ctrl))

	tests := []struct {
		name           string
		questionID     string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:       "Success",
			questionID: "3",
			mockSetup: func() {
				mockCatalog.EXPECT().
					SaveQuestion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, q models.Question) (*models.Question, error) {
						assert.Equal(t, int64(3), q.ID)
						return &q, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "NotFound",
			questionID: "9",
			mockSetup: func() {
				mockCatalog.EXPECT().
					SaveQuestion(gomock.Any(), gomock.Any()).
					Return(nil, errs.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "InvalidID",
			questionID:     "abc",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			body, err := upload.BuildQuestion(sampleItem())
			assert.NoError(t, err)

			req := multipartRequest(t, "PUT", "/api/v1/preguntas/"+tt.questionID, body)
			req = mux.SetURLVars(req, map[string]string{"id": tt.questionID})
			w := httptest.NewRecorder()

			quizDelivery.EditQuestion(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestQuizDelivery_ListQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mock_app.NewMockCatalogRepository(ctrl)
	quizDelivery := CreateQuizDelivery(mockCatalog, mock_app.NewMockBatchUsecase(ctrl))

	tests := []struct {
		name           string
		query          string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:  "Filtered",
			query: "?id_area=2&id_tema=5",
			mockSetup: func() {
				mockCatalog.EXPECT().
					ListQuestions(gomock.Any(), models.QuestionFilter{AreaID: 2, TopicID: 5}).
					Return([]models.Question{{ID: 1, AreaID: 2}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Unfiltered",
			query: "",
			mockSetup: func() {
				mockCatalog.EXPECT().
					ListQuestions(gomock.Any(), models.QuestionFilter{}).
					Return([]models.Question{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "BadFilter",
			query:          "?id_area=x",
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest("GET", "/api/v1/preguntas"+tt.query, nil)
			w := httptest.NewRecorder()

			quizDelivery.ListQuestions(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestQuizDelivery_Catalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mock_app.NewMockCatalogRepository(ctrl)
	quizDelivery := CreateQuizDelivery(mockCatalog, mock_app.NewMockBatchUsecase(ctrl))

	t.Run("ListAreas", func(t *testing.T) {
		mockCatalog.EXPECT().
			ListAreas(gomock.Any()).
			Return([]models.Area{{ID: 1, Name: "Matematica"}}, nil)

		w := httptest.NewRecorder()
		quizDelivery.ListAreas(w, httptest.NewRequest("GET", "/api/v1/areas", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"nombre":"Matematica"`)
	})

	t.Run("ListTopics", func(t *testing.T) {
		mockCatalog.EXPECT().
			ListTopics(gomock.Any(), int64(1)).
			Return([]models.Topic{{ID: 4, AreaID: 1, Name: "Algebra"}}, nil)

		req := httptest.NewRequest("GET", "/api/v1/areas/1/temas", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		w := httptest.NewRecorder()
		quizDelivery.ListTopics(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("CreateTopic", func(t *testing.T) {
		mockCatalog.EXPECT().
			CreateTopic(gomock.Any(), int64(1), "Algebra").
			Return(&models.Topic{ID: 4, AreaID: 1, Name: "Algebra"}, nil)

		req := httptest.NewRequest("POST", "/api/v1/temas", strings.NewReader(`{"id_area":1,"nombre":"Algebra"}`))
		w := httptest.NewRecorder()
		quizDelivery.CreateTopic(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateTopicInvalidBody", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/temas", strings.NewReader(`{"id_area":1}`))
		w := httptest.NewRecorder()
		quizDelivery.CreateTopic(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CreateTopicUnknownArea", func(t *testing.T) {
		mockCatalog.EXPECT().
			CreateTopic(gomock.Any(), int64(99), "Algebra").
			Return(nil, errs.ErrInvalidReference)

		req := httptest.NewRequest("POST", "/api/v1/temas", strings.NewReader(`{"id_area":99,"nombre":"Algebra"}`))
		w := httptest.NewRecorder()
		quizDelivery.CreateTopic(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetQuestionNotFound", func(t *testing.T) {
		mockCatalog.EXPECT().
			GetQuestion(gomock.Any(), int64(42)).
			Return(nil, errs.ErrNotFound)

		req := httptest.NewRequest("GET", "/api/v1/preguntas/42", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		quizDelivery.GetQuestion(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestQuizDelivery_Institution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mock_app.NewMockCatalogRepository(ctrl)
	quizDelivery := CreateQuizDelivery(mockCatalog, mock_app.NewMockBatchUsecase(ctrl))

	t.Run("ListCourses", func(t *testing.T) {
		mockCatalog.EXPECT().
			ListCourses(gomock.Any(), int64(1)).
			Return([]models.Course{{ID: 1, InstitutionID: 1, Name: "1A", Enabled: true}}, nil)

		req := httptest.NewRequest("GET", "/api/v1/instituciones/1/cursos", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		w := httptest.NewRecorder()
		quizDelivery.ListCourses(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ListTeachers", func(t *testing.T) {
		mockCatalog.EXPECT().
			ListTeachers(gomock.Any(), int64(1)).
			Return([]models.Teacher{{ID: "t1", InstitutionID: 1}}, nil)

		req := httptest.NewRequest("GET", "/api/v1/instituciones/1/docentes", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "1"})
		w := httptest.NewRecorder()
		quizDelivery.ListTeachers(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("CreateCourse", func(t *testing.T) {
		mockCatalog.EXPECT().
			CreateCourse(gomock.Any(), models.CreateCourseRequest{InstitutionID: 1, Name: "2B"}).
			Return(&models.Course{ID: 2, InstitutionID: 1, Name: "2B"}, nil)

		req := httptest.NewRequest("POST", "/api/v1/cursos", strings.NewReader(`{"id_institucion":1,"nombre":"2B"}`))
		w := httptest.NewRecorder()
		quizDelivery.CreateCourse(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("SetCourseEnabled", func(t *testing.T) {
		mockCatalog.EXPECT().
			SetCourseEnabled(gomock.Any(), int64(2), false).
			Return(&models.Course{ID: 2, Enabled: false}, nil)

		req := httptest.NewRequest("PATCH", "/api/v1/cursos/2/habilitado", strings.NewReader(`{"habilitado":false}`))
		req = mux.SetURLVars(req, map[string]string{"id": "2"})
		w := httptest.NewRecorder()
		quizDelivery.SetCourseEnabled(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"habilitado":false`)
	})

	t.Run("SetCourseEnabledMissing", func(t *testing.T) {
		mockCatalog.EXPECT().
			SetCourseEnabled(gomock.Any(), int64(8), true).
			Return(nil, errs.ErrNotFound)

		req := httptest.NewRequest("PATCH", "/api/v1/cursos/8/habilitado", strings.NewReader(`{"habilitado":true}`))
		req = mux.SetURLVars(req, map[string]string{"id": "8"})
		w := httptest.NewRecorder()
		quizDelivery.SetCourseEnabled(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestQuizDelivery_Quiz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mock_app.NewMockCatalogRepository(ctrl)
	quizDelivery := CreateQuizDelivery(mockCatalog, mock_app.NewMockBatchUsecase(ctrl))

	t.Run("SubmitAnswerUsesHeaderUser", func(t *testing.T) {
		mockCatalog.EXPECT().
			SaveAnswer(gomock.Any(), models.QuizAnswer{QuizID: 1, QuestionID: 2, OptionID: 3, UserID: "u-1"}).
			Return(&models.AnswerReceipt{ID: 10}, nil)

		req := httptest.NewRequest("POST", "/api/v1/quiz/respuestas",
			strings.NewReader(`{"id_quiz":1,"id_pregunta":2,"id_opcion":3}`))
		req.Header.Set("X-User-ID", "u-1")
		w := httptest.NewRecorder()
		quizDelivery.SubmitAnswer(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	tests := []struct {
		name           string
		body           string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"id_quiz":1,"id_usuario":"u-1","correctas":3,"total":5}`,
			mockSetup: func() {
				mockCatalog.EXPECT().
					SaveResult(gomock.Any(), gomock.Any()).
					Return(&models.QuizResultSummary{ID: 1, QuizID: 1, UserID: "u-1", Correct: 3, Total: 5}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "MoreCorrectThanTotal",
			body:           `{"id_quiz":1,"correctas":6,"total":5}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "ZeroTotal",
			body:           `{"id_quiz":1,"correctas":0,"total":0}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest("POST", "/api/v1/quiz/resultados", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			quizDelivery.SubmitResult(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	t.Run("ListResults", func(t *testing.T) {
		mockCatalog.EXPECT().
			ListResults(gomock.Any(), "u-1").
			Return([]models.QuizResultSummary{{ID: 1, UserID: "u-1"}}, nil)

		req := httptest.NewRequest("GET", "/api/v1/usuarios/u-1/resultados", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "u-1"})
		w := httptest.NewRecorder()
		quizDelivery.ListResults(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestQuizDelivery_RegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalog := mock_app.NewMockCatalogRepository(ctrl)
	mockBatch := mock_app.NewMockBatchUsecase(ctrl)

	router := mux.NewRouter()
	CreateQuizDelivery(mockCatalog, mockBatch).RegisterRoutes(router.PathPrefix("/api/v1").Subrouter())

	mockBatch.EXPECT().
		GetJobStatus(gomock.Any(), "op-9").
		Return(&models.BatchStatus{OperationID: "op-9", Status: models.BatchProcessing}, nil)
	mockCatalog.EXPECT().
		GetQuestion(gomock.Any(), int64(5)).
		Return(&models.Question{ID: 5}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/preguntas/lote/op-9", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"estado":"procesando"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/preguntas/5", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// A method mismatch inside a subrouter falls through to not found.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/v1/preguntas/5", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/preguntas/abc", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
