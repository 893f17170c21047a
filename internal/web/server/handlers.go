package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/annodex/annodex/index"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Classes: len(s.view.Classes())}
	if ix, ok := s.view.(*index.Index); ok {
		resp.IndexID = ix.ID()
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClasses(w http.ResponseWriter, r *http.Request) {
	classes := s.view.Classes()
	result := make([]classSummary, 0, len(classes))
	for _, c := range classes {
		result = append(result, newClassSummary(c))
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleClass(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookupClass(w, r)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, newClassDetail(c))
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookupClass(w, r)
	if !ok {
		return
	}
	fields := c.Fields()
	result := make([]fieldJSON, 0, len(fields))
	for _, f := range fields {
		result = append(result, newFieldJSON(f))
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleField(w http.ResponseWriter, r *http.Request) {
	f, ok := s.lookupField(w, r)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, newFieldJSON(f))
}

// handleFieldAnnotations serves the annotations attached to a field. With an
// "annotation" query parameter the named annotation type is resolved with
// repeatable expansion.
func (s *Server) handleFieldAnnotations(w http.ResponseWriter, r *http.Request) {
	f, ok := s.lookupField(w, r)
	if !ok {
		return
	}

	name := r.URL.Query().Get("annotation")
	if name == "" {
		s.respondJSON(w, http.StatusOK, newAnnotationList(f.Annotations()))
		return
	}

	instances, err := f.AnnotationsWithRepeatable(index.Name(name), s.view)
	if err != nil {
		switch {
		case index.IsNotIndexed(err), index.IsNotAnnotation(err):
			s.respondError(w, http.StatusBadRequest, err)
		default:
			s.logger.Error("repeatable resolution failed", zap.String("annotation", name), zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, err)
		}
		return
	}
	s.respondJSON(w, http.StatusOK, newAnnotationList(instances))
}

func (s *Server) handleAnnotationUsages(w http.ResponseWriter, r *http.Request) {
	name := index.Name(chi.URLParam(r, "name"))
	instances := s.view.Annotations(name)
	result := make([]usageJSON, 0, len(instances))
	for _, a := range instances {
		usage := usageJSON{Annotation: newAnnotationJSON(a)}
		if target := a.Target(); target != nil {
			usage.TargetKind = target.Kind().String()
			usage.Target = renderTarget(target)
		}
		result = append(result, usage)
	}
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) lookupClass(w http.ResponseWriter, r *http.Request) (*index.ClassInfo, bool) {
	name := index.Name(chi.URLParam(r, "name"))
	c, ok := s.view.ClassByName(name)
	if !ok {
		s.respondJSON(w, http.StatusNotFound, errorResponse{Error: "class not found: " + name.String()})
		return nil, false
	}
	return c, true
}

func (s *Server) lookupField(w http.ResponseWriter, r *http.Request) (*index.FieldInfo, bool) {
	c, ok := s.lookupClass(w, r)
	if !ok {
		return nil, false
	}
	fieldName := chi.URLParam(r, "field")
	f, ok := c.Field(fieldName)
	if !ok {
		s.respondJSON(w, http.StatusNotFound, errorResponse{Error: "field not found: " + fieldName})
		return nil, false
	}
	return f, true
}

func renderTarget(target index.AnnotationTarget) string {
	if str, ok := target.(fmt.Stringer); ok {
		return str.String()
	}
	return target.Kind().String()
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respondJSON(w, status, errorResponse{Error: err.Error()})
}
