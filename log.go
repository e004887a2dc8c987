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
	"log/slog"

	"github.com/rs/zerolog"
)

// All kinds log as structured objects with both zerolog and log/slog:
//
//	log.Error().Object("error", err).Msg("device sync failed")
//	slog.Error("device sync failed", "error", err)
var (
	_ zerolog.LogObjectMarshaler = (*Error)(nil)
	_ zerolog.LogObjectMarshaler = (*CallError)(nil)
	_ zerolog.LogObjectMarshaler = (*TaskError)(nil)

	_ slog.LogValuer = (*Error)(nil)
	_ slog.LogValuer = (*CallError)(nil)
	_ slog.LogValuer = (*TaskError)(nil)
)

// nilValue is what a nil taxonomy pointer logs as with slog, matching Error().
var nilValue = slog.StringValue("<nil>")

// MarshalZerologObject implements zerolog.LogObjectMarshaler. A nil receiver
// logs an empty object.
func (e *Error) MarshalZerologObject(ev *zerolog.Event) {
	if e == nil {
		return
	}
	e.base.marshalZerolog(ev, KindBase)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *CallError) MarshalZerologObject(ev *zerolog.Event) {
	if e == nil {
		return
	}
	e.base.marshalZerolog(ev, KindCall)
	ev.Str("error_code", e.errorCode)
	if e.detail != "" {
		ev.Str("detail", e.detail)
	}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e *TaskError) MarshalZerologObject(ev *zerolog.Event) {
	if e == nil {
		return
	}
	e.base.marshalZerolog(ev, KindTask)
	ev.Str("error_code", e.errorCode)
	if e.failureReason != "" {
		ev.Str("failure_reason", e.failureReason)
	}
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return nilValue
	}
	return slog.GroupValue(e.base.slogAttrs(KindBase)...)
}

// LogValue implements slog.LogValuer.
func (e *CallError) LogValue() slog.Value {
	if e == nil {
		return nilValue
	}
	attrs := append(e.base.slogAttrs(KindCall), slog.String("error_code", e.errorCode))
	if e.detail != "" {
		attrs = append(attrs, slog.String("detail", e.detail))
	}
	return slog.GroupValue(attrs...)
}

// LogValue implements slog.LogValuer.
func (e *TaskError) LogValue() slog.Value {
	if e == nil {
		return nilValue
	}
	attrs := append(e.base.slogAttrs(KindTask), slog.String("error_code", e.errorCode))
	if e.failureReason != "" {
		attrs = append(attrs, slog.String("failure_reason", e.failureReason))
	}
	return slog.GroupValue(attrs...)
}

func (b base) marshalZerolog(ev *zerolog.Event, k Kind) {
	ev.Str("kind", k.String()).Str("message", b.message)
	if b.cause != nil {
		ev.AnErr("cause", b.cause)
	}
}

func (b base) slogAttrs(k Kind) []slog.Attr {
	attrs := make([]slog.Attr, 0, 5)
	attrs = append(attrs, slog.String("kind", k.String()), slog.String("message", b.message))
	if b.cause != nil {
		attrs = append(attrs, slog.String("cause", b.cause.Error()))
	}
	return attrs
}
