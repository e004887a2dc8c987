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
	"dirpx.dev/apicem"
	"dirpx.dev/apicem/apis"
)

// ToView converts the first taxonomy error in err's chain, together with its
// resolved transport status, into a flat apis.ErrorView. This function
// performs no redaction; it exposes exactly what the error carries.
func ToView(err error, st apis.Status) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	f, ok := apicem.AsFault(err)
	if !ok {
		f = apicem.New(err.Error())
	}
	v := apis.ErrorView{
		Kind:       f.Kind().String(),
		Message:    f.Message(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
	if c := f.Cause(); c != nil {
		v.Cause = c.Error()
	}
	if de, ok := f.(apis.DetailedError); ok {
		v.ErrorCode = de.ErrorCode()
		v.Detail = de.Detail()
	}
	if ft, ok := f.(apis.FailedTask); ok {
		v.ErrorCode = ft.ErrorCode()
		v.FailureReason = ft.FailureReason()
	}
	return v
}
