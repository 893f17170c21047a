// Package index provides an in-memory annotation index over compiled type
// metadata: classes, fields, methods, and the annotation instances attached
// to them.
//
// # Overview
//
// The package models declarations extracted from a compiled class description
// as immutable records. A record identifies one declaration (its owner, name,
// declared type, and access flags) and carries the annotation instances
// attached to it. Records are assembled once through an Indexer and frozen
// into an Index; after that every query is a read over immutable data and is
// safe for concurrent use without synchronization.
//
// # Core Types
//
//   - Index / View: the type catalog, mapping names to class records and
//     annotation types to their usages
//   - Indexer: the builder used during two-phase population, frozen by Complete
//   - ClassInfo, FieldInfo, MethodInfo, MethodParameterInfo, TypeTarget,
//     RecordComponentInfo: the closed family of annotation targets
//   - AnnotationInstance / AnnotationValue: a concrete annotation occurrence
//     with bound member values
//   - TypeRef: an opaque, comparable type descriptor
//
// # Example Usage
//
// Building and querying an index:
//
//	ix := index.NewIndexer()
//	user, _ := ix.AddClass("com.example.User", index.FlagPublic)
//	id, _ := ix.AddField(user, "id", index.ClassType("java.util.UUID"), index.FlagPrivate|index.FlagFinal)
//	ix.SetFieldAnnotations(id, []*index.AnnotationInstance{
//		index.NewAnnotation("com.example.Id"),
//	})
//	idx, _ := ix.Complete()
//
//	cls, _ := idx.ClassByName("com.example.User")
//	field, _ := cls.Field("id")
//	if field.HasAnnotation("com.example.Id") {
//		// ...
//	}
//
// # Repeatable Annotations
//
// AnnotationsWithRepeatable resolves the logical list of occurrences of an
// annotation type, transparently unwrapping the container annotation used to
// encode repeated occurrences. A directly attached instance short-circuits
// the container lookup; when only the container is present its value array is
// returned in stored order.
//
// # Error Handling
//
// Absence (an annotation not attached, a class not indexed when merely
// probing) is reported through ok-style returns or empty slices, never
// through errors. Errors are reserved for caller contract violations and
// structurally malformed index data; see the package sentinel errors.
package index
