// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package keystorev3

import (
	"fmt"
	"strings"
)

// notFoundErr marks a path segment that was simply absent, as distinct from
// a segment that failed to resolve because of an ambiguous match. A
// non-object value met part-way along the path is also reported as absent.
type notFoundErr struct{ segment string }

func (e *notFoundErr) Error() string {
	return fmt.Sprintf("key not found: %s", e.segment)
}

func isNotFound(err error) bool {
	_, ok := err.(*notFoundErr)
	return ok
}

// resolvePath walks obj (the result of json.Unmarshal into interface{})
// along path's "/"-separated segments, matching object keys at each level
// case-insensitively. Producers disagree on "Crypto" vs "crypto" casing, so
// every lookup here must tolerate that - but two sibling keys differing
// only in case is a genuine ambiguity, not tolerance.
func resolvePath(obj interface{}, path string) (interface{}, error) {
	cur := obj
	for _, seg := range strings.Split(path, "/") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, &notFoundErr{segment: seg}
		}
		next, err := lookupCaseInsensitive(m, seg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func lookupCaseInsensitive(m map[string]interface{}, key string) (interface{}, error) {
	matchKey := ""
	found := false
	for k := range m {
		if strings.EqualFold(k, key) {
			if found {
				return nil, fmt.Errorf("%w: both %q and %q match %q", ErrAmbiguousKey, matchKey, k, key)
			}
			matchKey = k
			found = true
		}
	}
	if !found {
		return nil, &notFoundErr{segment: key}
	}
	return m[matchKey], nil
}

// getString resolves path to a string value. found is false when the path
// is simply absent (not an error); a present-but-wrong-typed value is an
// error.
func getString(doc interface{}, path string) (value string, found bool, err error) {
	v, err := resolvePath(doc, path)
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("expected string at %q, got %T", path, v)
	}
	return s, true, nil
}

// getNumber resolves path to a JSON number. encoding/json decodes all JSON
// numbers into float64 when unmarshaled into interface{}.
func getNumber(doc interface{}, path string) (value float64, found bool, err error) {
	v, err := resolvePath(doc, path)
	if err != nil {
		if isNotFound(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	n, ok := v.(float64)
	if !ok {
		return 0, false, fmt.Errorf("expected number at %q, got %T", path, v)
	}
	return n, true, nil
}

// getRequiredInt resolves path to an integer, reporting kindErr if the path
// is absent.
func getRequiredInt(doc interface{}, path string, kindErr error) (int, error) {
	n, found, err := getNumber(doc, path)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: missing %s", kindErr, path)
	}
	return int(n), nil
}
