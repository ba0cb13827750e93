// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: Joke and the User that owns it
//   - Validation: pure length checks for jokes and credentials
//   - Domain Errors: sentinel errors, DomainError and FieldErrors
//
// Rules for this package:
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Validators are pure functions returning "" for valid input
//
// Example:
//
//	if err := domain.ValidateJoke(name, content).Err(); err != nil {
//	    fieldErrs, _ := domain.AsFieldErrors(err)
//	    // fieldErrs[domain.FieldName], fieldErrs[domain.FieldContent]
//	}
package domain
