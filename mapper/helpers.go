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

package mapper

import "dirpx.dev/apicem"

// freeze makes an immutable copy of a builder map, converting builder-style
// int values into the transport type. Later mutations to the builder cannot
// affect the mapper.
func freeze[V any](src map[apicem.Kind]int, conv func(int) V) map[apicem.Kind]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[apicem.Kind]V, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}
