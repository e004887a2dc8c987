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

package grpcx

import (
	"context"

	"dirpx.dev/apicem"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// Metadata keys added by DefaultMeta.
const (
	KeyTraceID       = "trace_id"
	KeySpanID        = "span_id"
	KeyCorrelationID = "correlation_id"
)

// MetaFn extracts extra ErrorInfo metadata from the request context and the
// error. Keys already used by the encoded error are never overwritten.
type MetaFn func(ctx context.Context, f apicem.Fault) map[string]string

// DefaultMeta attaches the OpenTelemetry trace and span ids when the context
// carries a valid span, and a fresh correlation id otherwise, so a client can
// always quote something when reporting the failure.
func DefaultMeta(ctx context.Context, _ apicem.Fault) map[string]string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return map[string]string{
			KeyTraceID: sc.TraceID().String(),
			KeySpanID:  sc.SpanID().String(),
		}
	}
	return map[string]string{KeyCorrelationID: uuid.NewString()}
}
