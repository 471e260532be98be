// Package schema defines the request and response contracts of the Plié
// dance-academy REST API, one set of typed shapes per endpoint grouping.
// The client decodes every response at the boundary into these structs so
// callers never handle untyped JSON.
package schema
