// Package uniquelist provides an ordered collection that never holds two elements that
// are the same entity.
//
// Adding and replacing use the element's weak Same relation so that two records with
// different details but the same identity cannot coexist. Lookup for replacement and
// removal uses the strong Equal relation so that only the exact record given is touched.
//
// The list itself is meant to be owned by a single aggregate. Callers outside the owner
// only ever see a View, which reads the live contents and cannot mutate them.
package uniquelist
