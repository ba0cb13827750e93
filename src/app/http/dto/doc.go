// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// Action payloads mirror the form they answer: FormError for a submission
// that could not be read at all, FieldErrors for per-field messages and
// Fields echoing what was submitted so the form can be shown again.
//
//	{"fieldErrors": {"name": "That joke's name is too short. Min 3 characters"},
//	 "fields": {"name": "A", "content": "Why did the chicken cross the road?"}}
package dto
