package upload

import (
	"encoding/json"
	"fmt"

	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/utils/errs"
)

const (
	DataPartName     = "data"
	JSONContentType  = "application/json"
	ImageContentType = "image/*"
)

var marshal = json.Marshal

// Part is one named section of a multipart body.
type Part struct {
	Name        string
	Filename    string
	ContentType string
	Data        []byte
}

// Request is an ordered multipart body ready to be encoded.
type Request struct {
	Parts []Part
}

func (r *Request) PartNames() []string {
	names := make([]string, 0, len(r.Parts))
	for _, p := range r.Parts {
		names = append(names, p.Name)
	}
	return names
}

type batchPayload struct {
	Questions []questionPayload `json:"preguntas"`
}

type questionPayload struct {
	Statement  string          `json:"enunciado"`
	Difficulty string          `json:"nivel_dificultad"`
	AreaID     int64           `json:"id_area"`
	TopicID    *int64          `json:"id_tema"`
	Options    []optionPayload `json:"opciones"`
}

type optionPayload struct {
	Text    string `json:"texto_opcion"`
	Correct bool   `json:"es_correcta"`
}

func toPayload(item models.UploadBatchItem) questionPayload {
	options := make([]optionPayload, 0, len(item.Options))
	for _, opt := range item.Options {
		options = append(options, optionPayload{Text: opt.Text, Correct: opt.Correct})
	}

	return questionPayload{
		Statement:  item.Statement,
		Difficulty: item.Difficulty,
		AreaID:     item.AreaID,
		TopicID:    item.TopicID,
		Options:    options,
	}
}

func imagePart(name string, a *models.Attachment) Part {
	return Part{
		Name:        name,
		Filename:    a.Filename,
		ContentType: ImageContentType,
		Data:        a.Data,
	}
}

func jsonPart(v any) (Part, error) {
	body, err := marshal(v)
	if err != nil {
		return Part{}, fmt.Errorf("%w: %w", errs.ErrEncoding, err)
	}

	return Part{
		Name:        DataPartName,
		ContentType: JSONContentType,
		Data:        body,
	}, nil
}

// Build assembles the batch body: the JSON part first, then pregunta_{i}
// and opcion_{i}_{j} images in item-then-option order.
func Build(items []models.UploadBatchItem) (*Request, error) {
	payload := batchPayload{Questions: make([]questionPayload, 0, len(items))}
	for _, item := range items {
		payload.Questions = append(payload.Questions, toPayload(item))
	}

	data, err := jsonPart(payload)
	if err != nil {
		return nil, err
	}

	req := &Request{Parts: []Part{data}}
	for i, item := range items {
		if item.Image != nil {
			req.Parts = append(req.Parts, imagePart(fmt.Sprintf("pregunta_%d", i), item.Image))
		}
		for j, opt := range item.Options {
			if opt.Image != nil {
				req.Parts = append(req.Parts, imagePart(fmt.Sprintf("opcion_%d_%d", i, j), opt.Image))
			}
		}
	}

	return req, nil
}

// BuildQuestion assembles the body for creating or editing one question:
// the JSON part, then "pregunta" and "opcion_{j}" images.
func BuildQuestion(item models.UploadBatchItem) (*Request, error) {
	data, err := jsonPart(toPayload(item))
	if err != nil {
		return nil, err
	}

	req := &Request{Parts: []Part{data}}
	if item.Image != nil {
		req.Parts = append(req.Parts, imagePart("pregunta", item.Image))
	}
	for j, opt := range item.Options {
		if opt.Image != nil {
			req.Parts = append(req.Parts, imagePart(fmt.Sprintf("opcion_%d", j), opt.Image))
		}
	}

	return req, nil
}
