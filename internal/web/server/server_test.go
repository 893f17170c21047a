package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annodex/annodex/internal/fixture"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	idx, err := fixture.Build()
	require.NoError(t, err)
	return New(DefaultConfig("localhost:0"), idx, nil)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	decode(t, rec, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.IndexID)
	assert.Equal(t, 7, resp.Classes)
}

func TestClasses(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/classes")
	require.Equal(t, http.StatusOK, rec.Code)

	var classes []classSummary
	decode(t, rec, &classes)
	require.Len(t, classes, 7)

	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.Name
	}
	assert.Contains(t, names, "com.example.blog.Article")
	assert.Contains(t, names, fixture.TagName.String())
}

func TestClassDetail(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/classes/com.example.blog.Article")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail classDetail
	decode(t, rec, &detail)
	assert.Equal(t, "com.example.blog.Article", detail.Name)
	assert.Equal(t, "public", detail.Modifiers)
	require.Len(t, detail.Annotations, 1)
	assert.Equal(t, fixture.EntityName.String(), detail.Annotations[0].Name)
	assert.Len(t, detail.FieldList, 3)
	assert.Len(t, detail.MethodList, 1)
}

func TestClassDetail_NotFound(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/classes/com.example.Missing")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp errorResponse
	decode(t, rec, &resp)
	assert.Contains(t, resp.Error, "class not found")
}

func TestField(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/classes/com.example.blog.Article/fields/id")
	require.Equal(t, http.StatusOK, rec.Code)

	var f fieldJSON
	decode(t, rec, &f)
	assert.Equal(t, "id", f.Name)
	assert.Equal(t, "java.util.UUID", f.Type)
	assert.Equal(t, "private final", f.Modifiers)
	assert.Len(t, f.Annotations, 2)
}

func TestField_NotFound(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/classes/com.example.blog.Article/fields/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFieldAnnotations_Repeatable(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/classes/com.example.blog.Article/fields/title/annotations?annotation="+fixture.TagName.String())
	require.Equal(t, http.StatusOK, rec.Code)

	var annotations []annotationJSON
	decode(t, rec, &annotations)
	require.Len(t, annotations, 2)
	assert.Equal(t, fixture.TagName.String(), annotations[0].Name)
	require.Len(t, annotations[0].Values, 1)
	assert.Equal(t, `"headline"`, annotations[0].Values[0].Repr)
	assert.Equal(t, `"seo"`, annotations[1].Values[0].Repr)
}

func TestFieldAnnotations_DirectOnly(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/classes/com.example.blog.Article/fields/labels/annotations?annotation="+fixture.TagName.String())
	require.Equal(t, http.StatusOK, rec.Code)

	var annotations []annotationJSON
	decode(t, rec, &annotations)
	require.Len(t, annotations, 1)
	assert.Equal(t, `"taxonomy"`, annotations[0].Values[0].Repr)
}

func TestFieldAnnotations_UnknownAnnotationIsBadRequest(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/classes/com.example.blog.Article/fields/title/annotations?annotation=com.example.Unknown")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	decode(t, rec, &resp)
	assert.Contains(t, resp.Error, "com.example.Unknown")
}

func TestAnnotationUsages(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/annotations/"+fixture.NotNullName.String())
	require.Equal(t, http.StatusOK, rec.Code)

	var usages []usageJSON
	decode(t, rec, &usages)
	require.Len(t, usages, 2)

	kinds := []string{usages[0].TargetKind, usages[1].TargetKind}
	assert.Contains(t, kinds, "field")
	assert.Contains(t, kinds, "method parameter")
}

func TestAnnotationUsages_Empty(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/annotations/com.example.Unused")
	require.Equal(t, http.StatusOK, rec.Code)

	var usages []usageJSON
	decode(t, rec, &usages)
	assert.Empty(t, usages)
}
