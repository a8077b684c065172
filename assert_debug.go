// Copyright 2024 the taskpar authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build future_debug

package future

// assertValid diagnoses uses of invalid (zero or moved-from) handles.
// Calling into an invalid handle is a precondition violation; builds without
// the future_debug tag skip the check and fail on the nil core instead.
func assertValid(valid bool) {
	if !valid {
		panic(invalidFuturePanicMsg)
	}
}
