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

package future

// Void is the value type of futures that carry no value.
type Void = struct{}

// MakeReadyFuture returns a future that's born ready, holding val.
// Its IsReady is immediately true, and Get never blocks.
func MakeReadyFuture[T any](val T) Future[T] {
	return Future[T]{core: newReadyCore(val)}
}

// MakeReadyRefFuture returns a future that's born ready, referring to the
// value behind ref without copying it.
// The caller is responsible for keeping the target alive, and unchanged if
// readers expect that, for as long as the future and its copies are used.
func MakeReadyRefFuture[T any](ref *T) Future[*T] {
	return Future[*T]{core: newReadyCore(ref)}
}

// MakeReadyVoidFuture returns a valueless future that's born ready.
func MakeReadyVoidFuture() Future[Void] {
	return Future[Void]{core: newReadyCore(Void{})}
}
