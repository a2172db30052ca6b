/*
   Copyright 2026 The VLAYER Authors

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

package origin

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Origin is the canonical, validated identifier of a validation check.
//
// It is dot-separated with a small fixed depth; each segment names a layer,
// subsystem, or operation (e.g. "core.cmdbuffer.begin"). Dispatch rules
// match on origin prefixes, so segments should be chosen from stable
// subsystem names, not from per-call data.
type Origin string

// MinLength and MaxLength bound the length of a non-empty origin. The empty
// origin is always allowed and means "not provided".
const (
	MinLength = 3
	MaxLength = 128
)

// originFmt accepts 1 to 4 dot-separated segments, each starting with a
// lowercase letter and continuing with lowercase letters, digits or
// underscore. The empty string is handled separately as "optional".
const originFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`

var originRe = regexp.MustCompile(originFmt)

var (
	// ErrInvalidFormat is returned when an origin does not conform to the
	// segment grammar.
	ErrInvalidFormat = errors.New("verrors: invalid origin format")
	// ErrInvalidLength is returned when an origin is too short or too long.
	ErrInvalidLength = errors.New("verrors: invalid origin length")
)

var (
	_ encoding.TextMarshaler   = (*Origin)(nil)
	_ encoding.TextUnmarshaler = (*Origin)(nil)
)

// Empty is the zero-value origin, meaning "not provided".
var Empty Origin = ""

// Normalize brings an arbitrary string closer to canonical origin form:
// trim, lowercase, fold "/" to "." and "-" to "_". It does not guarantee
// validity; callers still Parse or Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string parses to Empty
// without error; that is what makes Origin optional.
func Parse(s string) (Origin, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Origin(s), nil
}

// MustParse is the panic-on-error variant of Parse for package-level
// constants. Unlike Parse it rejects the empty string: a constant origin
// that is empty is a programmer error.
func MustParse(s string) Origin {
	o, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if o == Empty {
		panic("verrors: empty origin in MustParse")
	}
	return o
}

// Validate checks whether o is in canonical form. Empty is valid here;
// callers that require a non-empty origin enforce that themselves.
func Validate(o Origin) error {
	if o == Empty {
		return nil
	}
	return validate(string(o))
}

// String returns the canonical string form.
func (o Origin) String() string { return string(o) }

// MarshalText implements encoding.TextMarshaler. Empty marshals to an empty
// slice so that encoders relying on TextMarshaler keep working.
func (o Origin) MarshalText() ([]byte, error) {
	if err := Validate(o); err != nil {
		return nil, err
	}
	if o == Empty {
		return []byte{}, nil
	}
	return []byte(o), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Whitespace-only input
// produces Empty.
func (o *Origin) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !originRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
