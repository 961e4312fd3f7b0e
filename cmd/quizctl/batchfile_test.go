package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/supchaser/quiz_client/internal/upload"
	"github.com/supchaser/quiz_client/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	os.Exit(m.Run())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadBatchFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "q.png", "png-bytes")
	writeFile(t, dir, "a.jpg", "jpg-bytes")
	path := writeFile(t, dir, "batch.json", `{
		"preguntas": [{
			"enunciado": "Capital de Francia",
			"nivel_dificultad": "facil",
			"id_area": 2,
			"imagen": "q.png",
			"opciones": [
				{"texto_opcion": "Paris", "es_correcta": true, "imagen": "a.jpg"},
				{"texto_opcion": "Roma"}
			]
		}]
	}`)

	items, err := readBatchFile(path)
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Capital de Francia", item.Statement)
	assert.Equal(t, int64(2), item.AreaID)
	assert.Nil(t, item.TopicID)
	assert.Equal(t, "q.png", item.Image.Filename)
	assert.Equal(t, []byte("png-bytes"), item.Image.Data)
	assert.Len(t, item.Options, 2)
	assert.Equal(t, "a.jpg", item.Options[0].Image.Filename)
	assert.Nil(t, item.Options[1].Image)

	req, err := upload.Build(items)
	assert.NoError(t, err)
	assert.Equal(t, []string{"data", "pregunta_0", "opcion_0_0"}, req.PartNames())
}

func TestReadBatchFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "MalformedJSON",
			content: `{"preguntas": [`,
		},
		{
			name:    "MissingImage",
			content: `{"preguntas": [{"enunciado": "x", "imagen": "nope.png"}]}`,
		},
		{
			name:    "MissingOptionImage",
			content: `{"preguntas": [{"enunciado": "x", "opciones": [{"texto_opcion": "a", "imagen": "nope.png"}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name+".json", tt.content)

			_, err := readBatchFile(path)
			assert.Error(t, err)
		})
	}

	_, err := readBatchFile(filepath.Join(dir, "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
