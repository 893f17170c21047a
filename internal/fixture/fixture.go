// Package fixture builds the sample annotation index bundled with the CLI.
// It stands in for the output of a class description reader so that the
// query surface can be explored without one.
package fixture

import "github.com/annodex/annodex/index"

// Annotation type names declared by the sample index.
const (
	TagName       index.Name = "com.example.annotations.Tag"
	TagsName      index.Name = "com.example.annotations.Tags"
	EntityName    index.Name = "com.example.annotations.Entity"
	NotNullName   index.Name = "com.example.annotations.NotNull"
	GeneratedName index.Name = "com.example.annotations.Generated"
)

const annotationFlags = index.FlagPublic | index.FlagInterface | index.FlagAbstract | index.FlagAnnotation

// Build assembles the sample index: a handful of annotation types (Tag
// repeatable via Tags), an entity class with annotated fields, and an enum.
func Build() (*index.Index, error) {
	ix := index.NewIndexer()

	tag, err := ix.AddClass(TagName, annotationFlags)
	if err != nil {
		return nil, err
	}
	if err := ix.SetClassAnnotations(tag, []*index.AnnotationInstance{
		index.NewAnnotation(index.RepeatableName,
			index.ClassValue("value", index.ClassType(TagsName))),
	}); err != nil {
		return nil, err
	}
	for _, name := range []index.Name{TagsName, EntityName, NotNullName, GeneratedName} {
		if _, err := ix.AddClass(name, annotationFlags); err != nil {
			return nil, err
		}
	}

	if err := addArticle(ix); err != nil {
		return nil, err
	}
	if err := addStatus(ix); err != nil {
		return nil, err
	}
	return ix.Complete()
}

func addArticle(ix *index.Indexer) error {
	article, err := ix.AddClass("com.example.blog.Article", index.FlagPublic)
	if err != nil {
		return err
	}
	if err := ix.SetClassAnnotations(article, []*index.AnnotationInstance{
		index.NewAnnotation(EntityName, index.StringValue("table", "articles")),
	}); err != nil {
		return err
	}

	id, err := ix.AddField(article, "id", index.ClassType("java.util.UUID"),
		index.FlagPrivate|index.FlagFinal)
	if err != nil {
		return err
	}
	if err := ix.SetFieldAnnotations(id, []*index.AnnotationInstance{
		index.NewAnnotation(NotNullName),
		index.NewAnnotation(GeneratedName),
	}); err != nil {
		return err
	}

	title, err := ix.AddField(article, "title", index.ClassType("java.lang.String"), index.FlagPrivate)
	if err != nil {
		return err
	}
	// Two Tag occurrences, encoded through the Tags container.
	if err := ix.SetFieldAnnotations(title, []*index.AnnotationInstance{
		index.NewAnnotation(TagsName, index.ArrayValue("value",
			index.NestedValue("", index.NewAnnotation(TagName, index.StringValue("value", "headline"))),
			index.NestedValue("", index.NewAnnotation(TagName, index.StringValue("value", "seo"))),
		)),
	}); err != nil {
		return err
	}

	labels, err := ix.AddField(article, "labels",
		index.ParameterizedType("java.util.List", index.ClassType("java.lang.String")),
		index.FlagPrivate)
	if err != nil {
		return err
	}
	if err := ix.SetFieldAnnotations(labels, []*index.AnnotationInstance{
		index.NewAnnotation(TagName, index.StringValue("value", "taxonomy")),
	}); err != nil {
		return err
	}

	rename, err := ix.AddMethod(article, "rename", index.PrimitiveType("void"), index.FlagPublic)
	if err != nil {
		return err
	}
	newTitle, err := ix.AddMethodParameter(rename, "newTitle", index.ClassType("java.lang.String"))
	if err != nil {
		return err
	}
	return ix.SetParameterAnnotations(newTitle, []*index.AnnotationInstance{
		index.NewAnnotation(NotNullName),
	})
}

func addStatus(ix *index.Indexer) error {
	status, err := ix.AddClass("com.example.blog.Status", index.FlagPublic|index.FlagEnum)
	if err != nil {
		return err
	}
	constFlags := index.FlagPublic | index.FlagStatic | index.FlagFinal | index.FlagEnum
	for _, name := range []string{"DRAFT", "PUBLISHED", "ARCHIVED"} {
		if _, err := ix.AddField(status, name, index.ClassType("com.example.blog.Status"), constFlags); err != nil {
			return err
		}
	}
	return nil
}
