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

package adapter

import (
	"errors"
	"fmt"

	"dirpx.dev/apicem"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Domain is the ErrorInfo domain of every encoded taxonomy error.
const Domain = "apicem"

// Metadata keys.
const (
	KeyMessage       = "message"
	KeyErrorCode     = "error_code"
	KeyDetail        = "detail"
	KeyFailureReason = "failure_reason"
	KeyCause         = "cause"
)

// Reserved reports whether k is a metadata key used by the encoded error
// fields. Extra metadata must not use these keys.
func Reserved(k string) bool {
	switch k {
	case KeyMessage, KeyErrorCode, KeyDetail, KeyFailureReason, KeyCause:
		return true
	}
	return false
}

// ErrForeignInfo is returned when an ErrorInfo was not produced by
// ToErrorInfo: another domain, or an unknown kind.
var ErrForeignInfo = errors.New("adapter: error info is not an apicem error")

// ToErrorInfo encodes the first taxonomy error in err's chain. Errors outside
// the taxonomy are encoded as a base error carrying err.Error(). A nil err
// yields nil.
func ToErrorInfo(err error) *errdetails.ErrorInfo {
	if err == nil {
		return nil
	}
	f, ok := apicem.AsFault(err)
	if !ok {
		f = apicem.New(err.Error())
	}

	md := make(map[string]string, 4)
	put := func(k, v string) {
		if v != "" {
			md[k] = v
		}
	}
	put(KeyMessage, f.Message())
	if c := f.Cause(); c != nil {
		// A cause with empty text is still a cause.
		md[KeyCause] = c.Error()
	}
	switch f := f.(type) {
	case *apicem.CallError:
		put(KeyErrorCode, f.ErrorCode())
		put(KeyDetail, f.Detail())
	case *apicem.TaskError:
		put(KeyErrorCode, f.ErrorCode())
		put(KeyFailureReason, f.FailureReason())
	}

	return &errdetails.ErrorInfo{
		Reason:   f.Kind().String(),
		Domain:   Domain,
		Metadata: md,
	}
}

// FromErrorInfo decodes an ErrorInfo produced by ToErrorInfo.
func FromErrorInfo(info *errdetails.ErrorInfo) (apicem.Fault, error) {
	if info == nil || info.GetDomain() != Domain {
		return nil, ErrForeignInfo
	}
	k, err := apicem.ParseKind(info.GetReason())
	if err != nil {
		return nil, fmt.Errorf("%w: kind %q", ErrForeignInfo, info.GetReason())
	}

	md := info.GetMetadata()
	var cause error
	if c, ok := md[KeyCause]; ok {
		cause = errors.New(c)
	}
	msg := md[KeyMessage]

	switch k {
	case apicem.KindCall:
		return apicem.WrapCall(md[KeyErrorCode], msg, md[KeyDetail], cause), nil
	case apicem.KindTask:
		return apicem.WrapTask(md[KeyErrorCode], msg, md[KeyFailureReason], cause), nil
	default:
		return apicem.Wrap(msg, cause), nil
	}
}

// Marshal encodes err as a binary protobuf ErrorInfo.
func Marshal(err error) ([]byte, error) {
	if err == nil {
		return nil, errors.New("adapter: marshal nil error")
	}
	b, merr := proto.Marshal(ToErrorInfo(err))
	if merr != nil {
		return nil, fmt.Errorf("adapter: marshal: %w", merr)
	}
	return b, nil
}

// Unmarshal decodes the output of Marshal.
func Unmarshal(b []byte) (apicem.Fault, error) {
	var info errdetails.ErrorInfo
	if err := proto.Unmarshal(b, &info); err != nil {
		return nil, fmt.Errorf("adapter: unmarshal: %w", err)
	}
	return FromErrorInfo(&info)
}

// MarshalJSON encodes err as protojson ErrorInfo, e.g.
//
//	{"reason":"call","domain":"apicem","metadata":{"error_code":"404","message":"Not Found"}}
func MarshalJSON(err error) ([]byte, error) {
	if err == nil {
		return nil, errors.New("adapter: marshal nil error")
	}
	b, merr := protojson.Marshal(ToErrorInfo(err))
	if merr != nil {
		return nil, fmt.Errorf("adapter: marshal json: %w", merr)
	}
	return b, nil
}

// UnmarshalJSON decodes the output of MarshalJSON. Unknown JSON fields are
// ignored.
func UnmarshalJSON(b []byte) (apicem.Fault, error) {
	var info errdetails.ErrorInfo
	if err := (protojson.UnmarshalOptions{DiscardUnknown: true}).Unmarshal(b, &info); err != nil {
		return nil, fmt.Errorf("adapter: unmarshal json: %w", err)
	}
	return FromErrorInfo(&info)
}
