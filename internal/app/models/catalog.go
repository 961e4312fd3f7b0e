package models

import "time"

type Area struct {
	ID     int64  `json:"id_area"`
	Name   string `json:"nombre"`
	Detail string `json:"descripcion,omitempty"`
}

type Topic struct {
	ID     int64  `json:"id_tema"`
	AreaID int64  `json:"id_area"`
	Name   string `json:"nombre"`
}

type Option struct {
	ID       int64  `json:"id_opcion,omitempty"`
	Text     string `json:"texto_opcion"`
	Correct  bool   `json:"es_correcta"`
	ImageURL string `json:"imagen_url,omitempty"`
}

type Question struct {
	ID         int64    `json:"id_pregunta"`
	Statement  string   `json:"enunciado"`
	Difficulty string   `json:"nivel_dificultad"`
	AreaID     int64    `json:"id_area"`
	TopicID    *int64   `json:"id_tema,omitempty"`
	ImageURL   string   `json:"imagen_url,omitempty"`
	Options    []Option `json:"opciones"`
}

// QuestionFilter narrows ListQuestions; zero fields are not sent.
type QuestionFilter struct {
	AreaID  int64
	TopicID int64
}

type Course struct {
	ID            int64  `json:"id_curso"`
	InstitutionID int64  `json:"id_institucion"`
	Name          string `json:"nombre"`
	TeacherID     string `json:"id_docente,omitempty"`
	Enabled       bool   `json:"habilitado"`
}

type Teacher struct {
	ID            string `json:"id_docente"`
	InstitutionID int64  `json:"id_institucion"`
	Name          string `json:"nombre"`
	Email         string `json:"email"`
}

type User struct {
	ID        string `json:"id_usuario"`
	Name      string `json:"nombre"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type QuizResultSummary struct {
	ID          int64     `json:"id_resultado"`
	QuizID      int64     `json:"id_quiz"`
	UserID      string    `json:"id_usuario"`
	Correct     int       `json:"correctas"`
	Total       int       `json:"total"`
	SubmittedAt time.Time `json:"fecha"`
}
