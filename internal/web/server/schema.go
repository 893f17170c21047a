package server

import (
	"strings"

	"github.com/annodex/annodex/index"
)

// JSON shapes served by the introspection API.

type healthResponse struct {
	Status  string `json:"status"`
	IndexID string `json:"index_id,omitempty"`
	Classes int    `json:"classes"`
}

type classSummary struct {
	Name           string `json:"name"`
	Modifiers      string `json:"modifiers,omitempty"`
	AnnotationType bool   `json:"annotation_type,omitempty"`
	Interface      bool   `json:"interface,omitempty"`
	Enum           bool   `json:"enum,omitempty"`
	Fields         int    `json:"fields"`
	Methods        int    `json:"methods"`
}

type classDetail struct {
	classSummary
	Annotations []annotationJSON `json:"annotations"`
	FieldList   []fieldJSON      `json:"field_list"`
	MethodList  []methodJSON     `json:"method_list"`
}

type fieldJSON struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	Modifiers    string           `json:"modifiers,omitempty"`
	EnumConstant bool             `json:"enum_constant,omitempty"`
	Synthetic    bool             `json:"synthetic,omitempty"`
	Annotations  []annotationJSON `json:"annotations"`
}

type methodJSON struct {
	Name        string           `json:"name"`
	ReturnType  string           `json:"return_type"`
	Modifiers   string           `json:"modifiers,omitempty"`
	Annotations []annotationJSON `json:"annotations"`
}

type annotationJSON struct {
	Name   string      `json:"name"`
	Values []valueJSON `json:"values,omitempty"`
}

type valueJSON struct {
	Name string `json:"name,omitempty"`
	Kind string `json:"kind"`
	Repr string `json:"repr"`
}

type usageJSON struct {
	TargetKind string         `json:"target_kind"`
	Target     string         `json:"target"`
	Annotation annotationJSON `json:"annotation"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newClassSummary(c *index.ClassInfo) classSummary {
	return classSummary{
		Name:           c.Name().String(),
		Modifiers:      modifiers(c.Flags()),
		AnnotationType: c.IsAnnotationType(),
		Interface:      c.IsInterface(),
		Enum:           c.IsEnum(),
		Fields:         len(c.Fields()),
		Methods:        len(c.Methods()),
	}
}

func newClassDetail(c *index.ClassInfo) classDetail {
	detail := classDetail{
		classSummary: newClassSummary(c),
		Annotations:  newAnnotationList(c.Annotations()),
		FieldList:    make([]fieldJSON, 0, len(c.Fields())),
		MethodList:   make([]methodJSON, 0, len(c.Methods())),
	}
	for _, f := range c.Fields() {
		detail.FieldList = append(detail.FieldList, newFieldJSON(f))
	}
	for _, m := range c.Methods() {
		detail.MethodList = append(detail.MethodList, methodJSON{
			Name:        m.Name(),
			ReturnType:  m.ReturnType().String(),
			Modifiers:   modifiers(m.Flags()),
			Annotations: newAnnotationList(m.Annotations()),
		})
	}
	return detail
}

func newFieldJSON(f *index.FieldInfo) fieldJSON {
	return fieldJSON{
		Name:         f.Name(),
		Type:         f.Type().String(),
		Modifiers:    modifiers(f.Flags()),
		EnumConstant: f.IsEnumConstant(),
		Synthetic:    f.IsSynthetic(),
		Annotations:  newAnnotationList(f.Annotations()),
	}
}

func newAnnotationJSON(a *index.AnnotationInstance) annotationJSON {
	values := make([]valueJSON, 0, len(a.Values()))
	for _, v := range a.Values() {
		values = append(values, valueJSON{
			Name: v.Name(),
			Kind: v.Kind().String(),
			Repr: valueRepr(v),
		})
	}
	return annotationJSON{Name: a.Name().String(), Values: values}
}

func newAnnotationList(annotations []*index.AnnotationInstance) []annotationJSON {
	result := make([]annotationJSON, 0, len(annotations))
	for _, a := range annotations {
		result = append(result, newAnnotationJSON(a))
	}
	return result
}

// valueRepr renders a member value without its "name = " prefix.
func valueRepr(v index.AnnotationValue) string {
	s := v.String()
	if v.Name() != "" {
		s = strings.TrimPrefix(s, v.Name()+" = ")
	}
	return s
}

// modifiers renders the flag bits the API exposes as a keyword string.
func modifiers(f index.Flags) string {
	var parts []string
	switch {
	case f.Has(index.FlagPublic):
		parts = append(parts, "public")
	case f.Has(index.FlagPrivate):
		parts = append(parts, "private")
	case f.Has(index.FlagProtected):
		parts = append(parts, "protected")
	}
	if f.IsStatic() {
		parts = append(parts, "static")
	}
	if f.IsFinal() {
		parts = append(parts, "final")
	}
	return strings.Join(parts, " ")
}
