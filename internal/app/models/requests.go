package models

import "time"

// Request types

type CreateTopicRequest struct {
	AreaID int64  `json:"id_area"`
	Name   string `json:"nombre"`
}

type CreateCourseRequest struct {
	InstitutionID int64  `json:"id_institucion"`
	Name          string `json:"nombre"`
	TeacherID     string `json:"id_docente,omitempty"`
}

type SetCourseEnabledRequest struct {
	Enabled bool `json:"habilitado"`
}

type QuizAnswer struct {
	QuizID     int64  `json:"id_quiz"`
	QuestionID int64  `json:"id_pregunta"`
	OptionID   int64  `json:"id_opcion"`
	UserID     string `json:"id_usuario"`
}

type QuizResult struct {
	QuizID  int64  `json:"id_quiz"`
	UserID  string `json:"id_usuario"`
	Correct int    `json:"correctas"`
	Total   int    `json:"total"`
}

// Response types

type AnswerReceipt struct {
	ID      int64 `json:"id_respuesta"`
	Correct *bool `json:"es_correcta,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Batch creation

type BatchStatusValue string

const (
	BatchPending    BatchStatusValue = "pendiente"
	BatchProcessing BatchStatusValue = "procesando"
	BatchCompleted  BatchStatusValue = "completado"
	BatchFailed     BatchStatusValue = "fallido"
)

func (s BatchStatusValue) Settled() bool {
	return s == BatchCompleted || s == BatchFailed
}

// AcceptedResponse is the body of a 202 answer.
type AcceptedResponse struct {
	OperationID string           `json:"id_operacion"`
	Status      BatchStatusValue `json:"estado"`
	StatusURL   string           `json:"estado_url,omitempty"`
}

type BatchStatus struct {
	OperationID string           `json:"id_operacion"`
	Status      BatchStatusValue `json:"estado"`
	Created     int              `json:"creadas"`
	Error       string           `json:"error,omitempty"`
}

// LongOperation is a server-side job acknowledged with 202 before it finished.
type LongOperation struct {
	ID         string
	StatusURL  string
	AcceptedAt time.Time
}

// BatchResult is what a batch submission resolves to.
type BatchResult struct {
	Accepted  bool
	Operation LongOperation
	Questions []Question
	Created   int
	// Synthesized marks a completion assumed after a fixed delay rather than
	// confirmed by the backend.
	Synthesized bool
}

// Notification is a user-facing message posted once a long operation settles.
type Notification struct {
	Channel string
	Title   string
	Body    string
}

// BatchJob is the stub backend's record of one accepted batch.
type BatchJob struct {
	ID        string
	Status    BatchStatusValue
	Questions []Question
	Created   int
	Error     string
	CreatedAt time.Time
}

// BatchCreatedResponse is the body of a 201 answer to a batch submission.
type BatchCreatedResponse struct {
	Created   int        `json:"creadas"`
	Questions []Question `json:"preguntas"`
}
