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

import "dirpx.dev/apicem/code"

// TaskStatus is the task record returned when polling an asynchronous
// APIC-EM task (GET /task/{taskId}).
type TaskStatus struct {
	TaskID        string `json:"taskId"`
	IsError       bool   `json:"isError"`
	ErrorCode     string `json:"errorCode,omitempty"`
	FailureReason string `json:"failureReason,omitempty"`
	Progress      string `json:"progress,omitempty"`
	EndTime       int64  `json:"endTime,omitempty"`
}

// Done reports whether the task has finished, successfully or not.
func (s TaskStatus) Done() bool {
	return s.IsError || s.EndTime != 0
}

// Err returns nil unless the task reported a failure, in which case it
// returns a *TaskError built from the record. The progress text becomes the
// message; when it is empty a message naming the task is used instead. A
// failure without an error code is reported as code.TaskFailed.
func (s TaskStatus) Err() error {
	if !s.IsError {
		return nil
	}
	msg := s.Progress
	if msg == "" {
		msg = "task " + s.TaskID + " failed"
	}
	errorCode := s.ErrorCode
	if errorCode == "" {
		errorCode = code.TaskFailed
	}
	return Task(errorCode, msg, s.FailureReason)
}
