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

import "errors"

// Fault is implemented by every error kind of the taxonomy and by nothing
// else. Dispatch on the concrete kind with a type switch or with Kind():
//
//	switch f := err.(type) {
//	case *apicem.CallError:
//	    log.Printf("call failed: %s (%s)", f.ErrorCode(), f.Detail())
//	case *apicem.TaskError:
//	    log.Printf("task failed: %s", f.FailureReason())
//	}
type Fault interface {
	error

	// Kind reports which variant the value is.
	Kind() Kind

	// Message returns the human-readable message.
	Message() string

	// Cause returns the wrapped lower-level fault, or nil.
	Cause() error

	sealed()
}

func (base) sealed() {}

var (
	_ Fault = (*Error)(nil)
	_ Fault = (*CallError)(nil)
	_ Fault = (*TaskError)(nil)
)

// AsFault finds the first taxonomy value in err's chain.
func AsFault(err error) (Fault, bool) {
	var f Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// KindOf returns the kind of the first taxonomy value in err's chain.
// ok is false when the chain holds none.
func KindOf(err error) (k Kind, ok bool) {
	f, ok := AsFault(err)
	if !ok {
		return KindBase, false
	}
	return f.Kind(), true
}

// AsCall finds the first *CallError in err's chain.
func AsCall(err error) (*CallError, bool) {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// AsTask finds the first *TaskError in err's chain.
func AsTask(err error) (*TaskError, bool) {
	var te *TaskError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// IsCall reports whether err's chain contains a *CallError.
func IsCall(err error) bool {
	_, ok := AsCall(err)
	return ok
}

// IsTask reports whether err's chain contains a *TaskError.
func IsTask(err error) bool {
	_, ok := AsTask(err)
	return ok
}

// ErrorCode returns the provider error code of the first CallError or
// TaskError in err's chain, or "" when there is none.
func ErrorCode(err error) string {
	var coded interface {
		Fault
		ErrorCode() string
	}
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return ""
}
