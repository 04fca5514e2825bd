// Package service contains the application use cases that sit between
// the HTTP layer and the domain. Services coordinate domain entities
// and store interfaces, own transactional boundaries, and translate
// store errors into application-level ones. Each service covers one
// area: user identity here, practice progress in the progress
// subpackage, token handling in auth.
//
// Services receive every dependency through their constructor and
// depend only on store interfaces, never on concrete database code.
package service
