/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apicem

import "strings"

// base carries the fields shared by every error kind: a human-readable
// message and an optional wrapped cause. It is embedded by value, so the
// accessors below are promoted onto Error, CallError and TaskError.
type base struct {
	message string
	cause   error
}

// Message returns the human-readable message the error was constructed with.
// It is empty only for zero-value errors.
func (b base) Message() string { return b.message }

// Cause returns the wrapped lower-level fault, or nil.
func (b base) Cause() error { return b.cause }

// Error is the generic APIC-EM client error (the base kind of the taxonomy).
//
// The zero value is a valid error with an empty message and no cause.
type Error struct {
	base
}

// Empty returns an Error with an empty message and no cause.
func Empty() *Error { return &Error{} }

// New returns an Error carrying msg.
func New(msg string) *Error {
	return &Error{base{message: msg}}
}

// Wrap returns an Error carrying msg and wrapping cause.
// A nil cause is stored as-is.
func Wrap(msg string, cause error) *Error {
	return &Error{base{message: msg, cause: cause}}
}

// Error implements the built-in error interface.
//
// The format is the message itself, or "apicem: error" when the message is
// empty. The cause is not part of the string; use errors.Unwrap to reach it.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.message == "" {
		return "apicem: error"
	}
	return e.message
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Kind reports KindBase.
func (e *Error) Kind() Kind { return KindBase }

// CallError reports a failed remote APIC-EM API call.
//
// It carries the provider's error code and an optional detail text in
// addition to the message. Values are stored exactly as supplied.
type CallError struct {
	base
	errorCode string
	detail    string
}

// EmptyCall returns a CallError whose fields are all empty.
func EmptyCall() *CallError { return &CallError{} }

// Call returns a CallError for a remote call that failed with errorCode.
func Call(errorCode, msg, detail string) *CallError {
	return &CallError{
		base:      base{message: msg},
		errorCode: errorCode,
		detail:    detail,
	}
}

// WrapCall is like Call but also wraps the lower-level fault (typically the
// transport error) as the cause.
func WrapCall(errorCode, msg, detail string, cause error) *CallError {
	return &CallError{
		base:      base{message: msg, cause: cause},
		errorCode: errorCode,
		detail:    detail,
	}
}

// ErrorCode returns the provider error code.
func (e *CallError) ErrorCode() string { return e.errorCode }

// Detail returns the additional detail text reported by the provider.
func (e *CallError) Detail() string { return e.detail }

// Kind reports KindCall.
func (e *CallError) Kind() Kind { return KindCall }

// Error implements the built-in error interface.
//
// The format is:
//
//	call <code>: <message>
//
// or, when Detail is present:
//
//	call <code>: <message>: <detail>
func (e *CallError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return format(KindCall, e.errorCode, e.message, e.detail)
}

// Unwrap returns the underlying cause.
func (e *CallError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// TaskError reports a failed asynchronous APIC-EM task.
//
// It carries the provider's error code and the failure reason reported by
// the task in addition to the message.
type TaskError struct {
	base
	errorCode     string
	failureReason string
}

// EmptyTask returns a TaskError whose fields are all empty.
func EmptyTask() *TaskError { return &TaskError{} }

// Task returns a TaskError for a task that failed with errorCode.
func Task(errorCode, msg, failureReason string) *TaskError {
	return &TaskError{
		base:          base{message: msg},
		errorCode:     errorCode,
		failureReason: failureReason,
	}
}

// WrapTask is like Task but also wraps an underlying fault as the cause.
func WrapTask(errorCode, msg, failureReason string, cause error) *TaskError {
	return &TaskError{
		base:          base{message: msg, cause: cause},
		errorCode:     errorCode,
		failureReason: failureReason,
	}
}

// ErrorCode returns the provider error code.
func (e *TaskError) ErrorCode() string { return e.errorCode }

// FailureReason returns the failure reason reported by the task.
func (e *TaskError) FailureReason() string { return e.failureReason }

// Kind reports KindTask.
func (e *TaskError) Kind() Kind { return KindTask }

// Error implements the built-in error interface.
//
// The format mirrors CallError:
//
//	task <code>: <message>[: <failure reason>]
func (e *TaskError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return format(KindTask, e.errorCode, e.message, e.failureReason)
}

// Unwrap returns the underlying cause.
func (e *TaskError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// format renders "<kind>[ <code>]: <message>[: <extra>]". An empty message
// is rendered as "error" so zero values still read sensibly in logs.
func format(k Kind, errorCode, msg, extra string) string {
	var b strings.Builder
	b.WriteString(k.String())
	if errorCode != "" {
		b.WriteByte(' ')
		b.WriteString(errorCode)
	}
	b.WriteString(": ")
	if msg == "" {
		msg = "error"
	}
	b.WriteString(msg)
	if extra != "" {
		b.WriteString(": ")
		b.WriteString(extra)
	}
	return b.String()
}
