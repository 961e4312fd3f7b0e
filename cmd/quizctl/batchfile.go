package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/upload"
)

// batchFile is the on-disk description of a batch. Image paths are relative
// to the file's directory.
type batchFile struct {
	Questions []struct {
		Statement  string `json:"enunciado"`
		Difficulty string `json:"nivel_dificultad"`
		AreaID     int64  `json:"id_area"`
		TopicID    *int64 `json:"id_tema"`
		Image      string `json:"imagen"`
		Options    []struct {
			Text    string `json:"texto_opcion"`
			Correct bool   `json:"es_correcta"`
			Image   string `json:"imagen"`
		} `json:"opciones"`
	} `json:"preguntas"`
}

func readBatchFile(path string) ([]models.UploadBatchItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file batchFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	attach := func(name string) (*models.Attachment, error) {
		if name == "" {
			return nil, nil
		}
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		return upload.FromFile(name)
	}

	items := make([]models.UploadBatchItem, 0, len(file.Questions))
	for i, q := range file.Questions {
		item := models.UploadBatchItem{
			Statement:  q.Statement,
			Difficulty: q.Difficulty,
			AreaID:     q.AreaID,
			TopicID:    q.TopicID,
		}
		if item.Image, err = attach(q.Image); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}

		for j, opt := range q.Options {
			option := models.BatchOption{Text: opt.Text, Correct: opt.Correct}
			if option.Image, err = attach(opt.Image); err != nil {
				return nil, fmt.Errorf("question %d option %d: %w", i, j, err)
			}
			item.Options = append(item.Options, option)
		}

		items = append(items, item)
	}

	return items, nil
}
