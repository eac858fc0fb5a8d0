package apischema

// Package apischema validates API request/response payloads against
// OpenAPI / JSON-Schema style schema documents.
//
// It provides:
//
// - A schema-agnostic document model (schema.Node trees, generic instance values)
// - $ref resolution with memoization, cycle handling and bounded recursion
// - Constraint evaluators for types, enums, bounds, patterns/formats,
//   object and array shapes, and the allOf/anyOf/oneOf/not combinators
// - A stable error model via Violations (JSON Pointer paths, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; input decoding lives under
//   source/, rendering under report/, and the CLI under cmd/apischema.
// - Evaluators never abort on a constraint violation; every violation found
//   in a single pass is reported. Only input parsing and the global step
//   budget use hard errors.
//
// Typical usage:
//
//	raw, err := source.DecodeJSON(schemaBytes)
//	v, err := apischema.Compile(raw, apischema.Options{})
//	res, err := v.Validate(ctx, inst)
//	if !res.Valid {
//		// inspect res.Violations
//	}
