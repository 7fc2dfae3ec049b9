package httpjson

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSetsCharset(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, 201, map[string]string{"id": "item-1"})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"item-1"}`, rec.Body.String())
}

func TestErrorShape(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, 400, "priceValue must not be negative")

	assert.Equal(t, 400, rec.Code)
	assert.JSONEq(t, `{"message":"priceValue must not be negative"}`, rec.Body.String())
}

func TestReadRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Kunafa","bogus":1}`))
	assert.Error(t, Read(req, &dst))

	req = httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Kunafa"}`))
	require.NoError(t, Read(req, &dst))
	assert.Equal(t, "Kunafa", dst.Name)
}
