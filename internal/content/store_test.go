package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `[
	{
		"id": 0,
		"title": "Bienvenida",
		"text": "El Anthony ha desaparecido.",
		"buttons": [{"label": "Empezar", "target_step": 1}]
	},
	{
		"id": 1,
		"title": "Primera pista",
		"text": "Busca la estatua.",
		"questions": [
			{"id": 0, "question_text": "¿En qué año?", "answer": "1293"},
			{"id": 1, "question_text": "¿Quién la fundó?", "answer": "Cisneros"}
		],
		"next_coordinates": {"latitude": 40.482, "longitude": -3.364}
	},
	{
		"id": 2,
		"title": "Final",
		"text": "Lo conseguiste."
	}
]`

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestStepLookup(t *testing.T) {
	store := NewStore(writeDocument(t, sampleDocument), 0)

	step, err := store.Step(1)
	require.NoError(t, err)
	assert.Equal(t, "Primera pista", step.Title)
	assert.Len(t, step.Questions, 2)
	assert.True(t, step.HasNavigation())
}

func TestStepNotFound(t *testing.T) {
	store := NewStore(writeDocument(t, sampleDocument), 0)

	_, err := store.Step(99)
	assert.ErrorIs(t, err, ErrStepNotFound)
}

func TestLastStepID(t *testing.T) {
	store := NewStore(writeDocument(t, sampleDocument), 0)

	last, err := store.LastStepID()
	require.NoError(t, err)
	assert.Equal(t, 2, last)
}

func TestReReadPicksUpEdits(t *testing.T) {
	path := writeDocument(t, sampleDocument)
	store := NewStore(path, 0)

	_, err := store.Step(0)
	require.NoError(t, err)

	edited := `[{"id": 0, "title": "Nueva bienvenida", "text": "Cambiado."}]`
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))

	step, err := store.Step(0)
	require.NoError(t, err)
	assert.Equal(t, "Nueva bienvenida", step.Title)
}

func TestCacheServesUntilInvalidated(t *testing.T) {
	path := writeDocument(t, sampleDocument)
	store := NewStore(path, 1*time.Hour)

	_, err := store.Step(0)
	require.NoError(t, err)

	edited := `[{"id": 0, "title": "Nueva bienvenida", "text": "Cambiado."}]`
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))

	// Cached copy still answers
	step, err := store.Step(0)
	require.NoError(t, err)
	assert.Equal(t, "Bienvenida", step.Title)

	store.Invalidate()

	step, err = store.Step(0)
	require.NoError(t, err)
	assert.Equal(t, "Nueva bienvenida", step.Title)
}

func TestRejectsDanglingButtonTarget(t *testing.T) {
	doc := `[{"id": 0, "title": "T", "text": "x", "buttons": [{"label": "Ir", "target_step": 7}]}]`
	store := NewStore(writeDocument(t, doc), 0)

	_, err := store.Load()
	assert.ErrorContains(t, err, "unknown step 7")
}

func TestRejectsNonContiguousQuestions(t *testing.T) {
	doc := `[{"id": 0, "title": "T", "text": "x", "questions": [
		{"id": 0, "question_text": "a", "answer": "a"},
		{"id": 2, "question_text": "b", "answer": "b"}
	]}]`
	store := NewStore(writeDocument(t, doc), 0)

	_, err := store.Load()
	assert.ErrorContains(t, err, "question ids must ascend")
}

func TestReservedButtonCodesAllowed(t *testing.T) {
	doc := `[{"id": 0, "title": "T", "text": "x", "buttons": [
		{"label": "Ayuda", "target_step": -1},
		{"label": "Volver", "target_step": -2}
	]}]`
	store := NewStore(writeDocument(t, doc), 0)

	_, err := store.Load()
	assert.NoError(t, err)
}
