package response

import (
	"errors"
	"iter"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID int `json:"id"`
}

func seqOf(items []item, tail error) iter.Seq2[item, error] {
	return func(yield func(item, error) bool) {
		for _, it := range items {
			if !yield(it, nil) {
				return
			}
		}
		if tail != nil {
			yield(item{}, tail)
		}
	}
}

func TestNDJSON_WritesOneLinePerItem(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := NDJSON(rec, seqOf([]item{{1}, {2}}, nil))

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentTypeNDJSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, "{\"id\":1}\n{\"id\":2}\n", rec.Body.String())
	assert.True(t, rec.Flushed)
}

func TestNDJSON_EmptySequence(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := NDJSON(rec, seqOf(nil, nil))

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestNDJSON_ErrorBeforeFirstItemLeavesResponseUntouched(t *testing.T) {
	rec := httptest.NewRecorder()
	boom := errors.New("boom")

	n, err := NDJSON(rec, seqOf(nil, boom))

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, n)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Type"))
}

func TestNDJSON_ErrorMidStreamStops(t *testing.T) {
	rec := httptest.NewRecorder()
	boom := errors.New("boom")

	n, err := NDJSON(rec, seqOf([]item{{1}}, boom))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, n)
	assert.Equal(t, "{\"id\":1}\n", rec.Body.String())
}
