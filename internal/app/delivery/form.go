package delivery

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/validate"
	"golang.org/x/sync/errgroup"
)

const maxUploadMemory = 32 << 20

type batchData struct {
	Questions []models.Question `json:"preguntas"`
}

// parseQuestionForm decodes the "data" part into out and stores every image
// part, returning the URL assigned to each part name.
func parseQuestionForm(r *http.Request, out any) (map[string]string, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidBatch, err)
	}

	data := r.MultipartForm.Value["data"]
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: missing data part", errs.ErrInvalidBatch)
	}
	if err := json.Unmarshal([]byte(data[0]), out); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidBatch, err)
	}

	var (
		mu   sync.Mutex
		urls = make(map[string]string)
	)

	g, _ := errgroup.WithContext(r.Context())
	for name, headers := range r.MultipartForm.File {
		if len(headers) == 0 {
			continue
		}
		header := headers[0]
		g.Go(func() error {
			url, err := storeImage(header)
			if err != nil {
				return fmt.Errorf("part %s: %w", name, err)
			}

			mu.Lock()
			urls[name] = url
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return urls, nil
}

// storeImage checks an uploaded image and gives it a media URL. The stub
// keeps no bytes.
func storeImage(header *multipart.FileHeader) (string, error) {
	if err := validate.ValidateFileExtension(header.Filename); err != nil {
		return "", err
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	size, err := io.Copy(io.Discard, f)
	if err != nil {
		return "", err
	}
	if size == 0 {
		return "", fmt.Errorf("%w: empty image %s", errs.ErrInvalidBatch, header.Filename)
	}

	return "/media/" + uuid.NewString() + "/" + header.Filename, nil
}

func applyBatchImages(questions []models.Question, urls map[string]string) {
	for i := range questions {
		if url, ok := urls[fmt.Sprintf("pregunta_%d", i)]; ok {
			questions[i].ImageURL = url
		}
		for j := range questions[i].Options {
			if url, ok := urls[fmt.Sprintf("opcion_%d_%d", i, j)]; ok {
				questions[i].Options[j].ImageURL = url
			}
		}
	}
}

func applyQuestionImages(q *models.Question, urls map[string]string) {
	if url, ok := urls["pregunta"]; ok {
		q.ImageURL = url
	}
	for j := range q.Options {
		if url, ok := urls[fmt.Sprintf("opcion_%d", j)]; ok {
			q.Options[j].ImageURL = url
		}
	}
}
