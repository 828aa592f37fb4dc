// Package services contains the server-side business logic: identity
// verification, form validation and grievance submission.
package services

import "time"

// Recorder receives outcome events. metrics.Metrics implements it.
type Recorder interface {
	Login(result string)
	Submission(result string)
	DocumentDegraded()
	ObserveSubmission(start time.Time)
}

// Outcome labels passed to a Recorder.
const (
	ResultOK           = "ok"
	ResultDenied       = "denied"
	ResultUnauthorized = "unauthorized"
	ResultInvalid      = "invalid"
	ResultError        = "error"
)

type nopRecorder struct{}

func (nopRecorder) Login(string)      {}
func (nopRecorder) Submission(string) {}
func (nopRecorder) DocumentDegraded() {}

func (nopRecorder) ObserveSubmission(time.Time) {}
