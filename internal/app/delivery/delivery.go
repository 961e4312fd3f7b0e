package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"github.com/supchaser/quiz_client/internal/utils/responses"
	"go.uber.org/zap"
)

type QuizDelivery struct {
	catalog app.CatalogRepository
	batch   app.BatchUsecase
}

func CreateQuizDelivery(catalog app.CatalogRepository, batch app.BatchUsecase) *QuizDelivery {
	return &QuizDelivery{
		catalog: catalog,
		batch:   batch,
	}
}

// RegisterRoutes mounts every endpoint on router, which is expected to be
// the /api/v1 subrouter.
func (d *QuizDelivery) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/areas", d.ListAreas).Methods("GET")
	router.HandleFunc("/areas/{id:[0-9]+}/temas", d.ListTopics).Methods("GET")
	router.HandleFunc("/temas", d.CreateTopic).Methods("POST")

	router.HandleFunc("/preguntas", d.ListQuestions).Methods("GET")
	router.HandleFunc("/preguntas", d.CreateQuestion).Methods("POST")
	router.HandleFunc("/preguntas/lote", d.CreateQuestionBatch).Methods("POST")
	router.HandleFunc("/preguntas/lote/{id}", d.GetBatchStatus).Methods("GET")
	router.HandleFunc("/preguntas/{id:[0-9]+}", d.GetQuestion).Methods("GET")
	router.HandleFunc("/preguntas/{id:[0-9]+}", d.EditQuestion).Methods("PUT")

	router.HandleFunc("/instituciones/{id:[0-9]+}/cursos", d.ListCourses).Methods("GET")
	router.HandleFunc("/instituciones/{id:[0-9]+}/docentes", d.ListTeachers).Methods("GET")
	router.HandleFunc("/cursos", d.CreateCourse).Methods("POST")
	router.HandleFunc("/cursos/{id:[0-9]+}/habilitado", d.SetCourseEnabled).Methods("PATCH")

	router.HandleFunc("/quiz/respuestas", d.SubmitAnswer).Methods("POST")
	router.HandleFunc("/quiz/resultados", d.SubmitResult).Methods("POST")
	router.HandleFunc("/usuarios/{id}/resultados", d.ListResults).Methods("GET")
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

func queryID(r *http.Request, key string) (int64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil && id > 0
}

func decodeJSON(r *http.Request, out any) bool {
	return json.NewDecoder(r.Body).Decode(out) == nil
}

// Catalog

func (d *QuizDelivery) ListAreas(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.ListAreas"

	areas, err := d.catalog.ListAreas(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, areas, http.StatusOK)
}

func (d *QuizDelivery) ListTopics(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.ListTopics"

	areaID, ok := pathID(r)
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid area id")
		return
	}

	topics, err := d.catalog.ListTopics(r.Context(), areaID)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, topics, http.StatusOK)
}

func (d *QuizDelivery) CreateTopic(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.CreateTopic"

	req := models.CreateTopicRequest{}
	if !decodeJSON(r, &req) || req.Name == "" || req.AreaID <= 0 {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	topic, err := d.catalog.CreateTopic(r.Context(), req.AreaID, req.Name)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, topic, http.StatusCreated)
}

func (d *QuizDelivery) ListQuestions(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.ListQuestions"

	areaID, okArea := queryID(r, "id_area")
	topicID, okTopic := queryID(r, "id_tema")
	if !okArea || !okTopic {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid filter")
		return
	}

	questions, err := d.catalog.ListQuestions(r.Context(), models.QuestionFilter{AreaID: areaID, TopicID: topicID})
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, questions, http.StatusOK)
}

func (d *QuizDelivery) GetQuestion(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.GetQuestion"

	id, ok := pathID(r)
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid question id")
		return
	}

	question, err := d.catalog.GetQuestion(r.Context(), id)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, question, http.StatusOK)
}

func (d *QuizDelivery) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	d.saveQuestion(w, r, 0, http.StatusCreated)
}

func (d *QuizDelivery) EditQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid question id")
		return
	}
	d.saveQuestion(w, r, id, http.StatusOK)
}

func (d *QuizDelivery) saveQuestion(w http.ResponseWriter, r *http.Request, id int64, status int) {
	const funcName = "QuizDelivery.saveQuestion"

	question := models.Question{}
	urls, err := parseQuestionForm(r, &question)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}
	applyQuestionImages(&question, urls)
	question.ID = id

	saved, err := d.catalog.SaveQuestion(r.Context(), question)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, saved, status)
}

// Batch

func (d *QuizDelivery) CreateQuestionBatch(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.CreateQuestionBatch"
	logger.Debug("receiving question batch",
		zap.String("function", funcName),
	)

	data := batchData{}
	urls, err := parseQuestionForm(r, &data)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}
	applyBatchImages(data.Questions, urls)

	job, err := d.batch.SubmitBatch(r.Context(), data.Questions)
	if err != nil {
		if errors.Is(err, errs.ErrMaxJobsReached) {
			responses.DoJSONResponse(w, map[string]any{
				"error":      err.Error(),
				"max_jobs":   d.batch.GetMaxJobs(),
				"active_now": d.batch.GetActiveJobsCount(),
				"suggestion": "Try again later",
			}, http.StatusTooManyRequests)
			return
		}
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, models.AcceptedResponse{
		OperationID: job.ID,
		Status:      job.Status,
		StatusURL:   statusURL(r, job.ID),
	}, http.StatusAccepted)
}

func statusURL(r *http.Request, jobID string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.Path + "/" + jobID
}

func (d *QuizDelivery) GetBatchStatus(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.GetBatchStatus"

	status, err := d.batch.GetJobStatus(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, status, http.StatusOK)
}

// Institution

func (d *QuizDelivery) ListCourses(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.ListCourses"

	institutionID, ok := pathID(r)
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid institution id")
		return
	}

	courses, err := d.catalog.ListCourses(r.Context(), institutionID)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, courses, http.StatusOK)
}

func (d *QuizDelivery) ListTeachers(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.ListTeachers"

	institutionID, ok := pathID(r)
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid institution id")
		return
	}

	teachers, err := d.catalog.ListTeachers(r.Context(), institutionID)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, teachers, http.StatusOK)
}

func (d *QuizDelivery) CreateCourse(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.CreateCourse"

	req := models.CreateCourseRequest{}
	if !decodeJSON(r, &req) || req.Name == "" || req.InstitutionID <= 0 {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := d.catalog.CreateCourse(r.Context(), req)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, course, http.StatusCreated)
}

func (d *QuizDelivery) SetCourseEnabled(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.SetCourseEnabled"

	courseID, ok := pathID(r)
	if !ok {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid course id")
		return
	}

	req := models.SetCourseEnabledRequest{}
	if !decodeJSON(r, &req) {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := d.catalog.SetCourseEnabled(r.Context(), courseID, req.Enabled)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, course, http.StatusOK)
}

// Quiz

func (d *QuizDelivery) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.SubmitAnswer"

	answer := models.QuizAnswer{}
	if !decodeJSON(r, &answer) || answer.QuestionID <= 0 {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if answer.UserID == "" {
		answer.UserID = r.Header.Get("X-User-ID")
	}

	receipt, err := d.catalog.SaveAnswer(r.Context(), answer)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, receipt, http.StatusCreated)
}

func (d *QuizDelivery) SubmitResult(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.SubmitResult"

	result := models.QuizResult{}
	if !decodeJSON(r, &result) || result.Total <= 0 || result.Correct < 0 || result.Correct > result.Total {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if result.UserID == "" {
		result.UserID = r.Header.Get("X-User-ID")
	}

	summary, err := d.catalog.SaveResult(r.Context(), result)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, summary, http.StatusCreated)
}

func (d *QuizDelivery) ListResults(w http.ResponseWriter, r *http.Request) {
	const funcName = "QuizDelivery.ListResults"

	results, err := d.catalog.ListResults(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, results, http.StatusOK)
}
