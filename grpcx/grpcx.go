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

// Package grpcx plugs the apicem taxonomy into gRPC.
//
// On the server side, UnaryServerInterceptor turns taxonomy errors returned by
// handlers into gRPC statuses whose code comes from an apis.Mapper and whose
// details carry the adapter ErrorInfo. On the client side,
// UnaryClientInterceptor turns every failed call into a *apicem.CallError
// (or restores the *apicem.TaskError the server sent), wrapping the original
// transport error as the cause.
package grpcx

import (
	"context"
	"strings"
	"unicode"

	"dirpx.dev/apicem"
	"dirpx.dev/apicem/adapter"
	"dirpx.dev/apicem/apis"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// ToStatus converts err into a gRPC status. The code is resolved by m, the
// message is the taxonomy message, and the adapter ErrorInfo (enriched by
// metaFn, when non-nil) is attached as a detail. If the detail cannot be
// attached the bare status is returned.
func ToStatus(ctx context.Context, m apis.Mapper, err error, metaFn MetaFn) *gstatus.Status {
	if err == nil {
		return gstatus.New(gcodes.OK, "")
	}
	info := adapter.ToErrorInfo(err)
	if metaFn != nil {
		f, ok := apicem.AsFault(err)
		if !ok {
			f = apicem.New(err.Error())
		}
		for k, v := range metaFn(ctx, f) {
			// Encoded field keys are reserved even when the field is empty.
			if adapter.Reserved(k) || v == "" {
				continue
			}
			info.Metadata[k] = v
		}
	}

	st := apis.StatusOf(m, err)
	base := gstatus.New(st.GRPC, info.GetMetadata()[adapter.KeyMessage])
	if with, derr := base.WithDetails(info); derr == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// taxonomy errors into gRPC errors. Other errors are returned as-is.
//
// metaFn may be nil; use DefaultMeta to attach trace or correlation ids.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if _, ok := apicem.AsFault(err); !ok {
			// Not a taxonomy value, pass through.
			return nil, err
		}
		return nil, ToStatus(ctx, m, err, metaFn).Err()
	}
}

// FromError decodes the taxonomy error carried by a gRPC status error.
// ok is false when err is not a status error or carries no apicem detail.
func FromError(err error) (apicem.Fault, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok {
			continue
		}
		if f, derr := adapter.FromErrorInfo(info); derr == nil {
			return f, true
		}
	}
	return nil, false
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that reports
// every failed invocation as a taxonomy error wrapping the transport error:
//
//   - a TaskError sent by the server is restored as a *apicem.TaskError;
//   - a CallError sent by the server keeps its code and detail;
//   - anything else becomes a *apicem.CallError whose code is the gRPC code
//     name (e.g. "UNAVAILABLE") and whose message is the status message.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		return fromTransport(err)
	}
}

func fromTransport(err error) error {
	st, ok := gstatus.FromError(err)
	if !ok {
		st = gstatus.FromContextError(err)
	}
	if f, ok := FromError(err); ok {
		switch f := f.(type) {
		case *apicem.TaskError:
			return apicem.WrapTask(f.ErrorCode(), f.Message(), f.FailureReason(), err)
		case *apicem.CallError:
			return apicem.WrapCall(f.ErrorCode(), f.Message(), f.Detail(), err)
		}
	}
	return apicem.WrapCall(CodeName(st.Code()), st.Message(), "", err)
}

// CodeName renders a gRPC code in its canonical upper snake case form, e.g.
// codes.DeadlineExceeded -> "DEADLINE_EXCEEDED".
func CodeName(c gcodes.Code) string {
	s := c.String()
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(rune(s[i-1])) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
