// Package domain contains the core business entities, value objects, and
// domain logic of the application: courses, the students enrolled in them,
// the API users who manage both, and the validation rules every record must
// satisfy before it is accepted. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
