/*
Copyright 2011-2017 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package lcpindex

import "errors"

// ErrEmptySequence is returned by Query when the Index was built from a
// zero-length sequence; there are no suffixes to compare.
var ErrEmptySequence = errors.New("lcpindex: query against an index built from an empty sequence")

// ErrInvalidIndex is returned by Query when i or j falls outside [0, n).
var ErrInvalidIndex = errors.New("lcpindex: index out of range")
