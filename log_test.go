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

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(b), &m); err != nil {
		t.Fatalf("decode log line %q: %v", b, err)
	}
	return m
}

func TestZerolog_Object(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	err := WrapCall("404", "Not Found", "resource missing", errors.New("http 404"))
	log.Error().Object("error", err).Msg("lookup failed")

	line := decodeLine(t, buf.Bytes())
	obj, ok := line["error"].(map[string]any)
	if !ok {
		t.Fatalf("error field missing: %v", line)
	}
	want := map[string]string{
		"kind":       "call",
		"message":    "Not Found",
		"error_code": "404",
		"detail":     "resource missing",
		"cause":      "http 404",
	}
	for k, v := range want {
		if obj[k] != v {
			t.Fatalf("%s = %v, want %q", k, obj[k], v)
		}
	}
}

func TestZerolog_TaskOmitsEmptyReason(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	log.Info().Object("error", Task("T1", "m", "")).Send()

	obj := decodeLine(t, buf.Bytes())["error"].(map[string]any)
	if _, ok := obj["failure_reason"]; ok {
		t.Fatal("empty failure_reason must be omitted")
	}
	if _, ok := obj["cause"]; ok {
		t.Fatal("nil cause must be omitted")
	}
}

func TestSlog_LogValue(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	log.Error("task failed", "error", Task("TASK_TIMEOUT", "Task did not complete", "exceeded 30s"))

	obj, ok := decodeLine(t, buf.Bytes())["error"].(map[string]any)
	if !ok {
		t.Fatal("error must be logged as a group")
	}
	if obj["kind"] != "task" || obj["error_code"] != "TASK_TIMEOUT" || obj["failure_reason"] != "exceeded 30s" {
		t.Fatalf("unexpected group: %v", obj)
	}
}

func TestLog_NilReceivers(t *testing.T) {
	tests := []struct {
		name string
		zl   zerolog.LogObjectMarshaler
		sl   slog.LogValuer
	}{
		{"base", (*Error)(nil), (*Error)(nil)},
		{"call", (*CallError)(nil), (*CallError)(nil)},
		{"task", (*TaskError)(nil), (*TaskError)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)
			logger.Error().Object("error", tt.zl).Msg("x")
			if v := decodeLine(t, buf.Bytes())["error"]; v != nil {
				if obj, ok := v.(map[string]any); !ok || len(obj) != 0 {
					t.Fatalf("zerolog nil %s = %v, want empty object", tt.name, v)
				}
			}

			if v := tt.sl.LogValue(); v.Kind() != slog.KindString || v.String() != "<nil>" {
				t.Fatalf("slog nil %s = %v, want <nil>", tt.name, v)
			}
		})
	}
}
