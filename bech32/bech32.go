// Copyright 2025 Blink Labs Software
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

package bech32

import (
	"fmt"
	"strings"
)

// Encode returns the bech32 string for the given HRP and 5-bit data words.
// An all upper-case HRP is accepted and lower-cased, so the output is always
// lower-case.
func Encode(hrp string, words []byte) (string, error) {
	hrp, err := normalizeHrp(hrp)
	if err != nil {
		return "", err
	}
	for i, w := range words {
		if w > 31 {
			return "", fmt.Errorf(
				"%w: value %d at index %d",
				ErrInvalidDataWord,
				w,
				i,
			)
		}
	}
	checksum := createChecksum(hrp, words)
	var sb strings.Builder
	sb.Grow(len(hrp) + 1 + len(words) + checksumLength)
	sb.WriteString(hrp)
	sb.WriteByte(separator)
	for _, w := range words {
		sb.WriteByte(Charset[w])
	}
	for _, w := range checksum {
		sb.WriteByte(Charset[w])
	}
	return sb.String(), nil
}

// Decode validates a bech32 string and returns its lower-case HRP and the
// data words, without the trailing checksum words
func Decode(bech string) (string, []byte, error) {
	if len(bech) < minLength {
		return "", nil, fmt.Errorf(
			"%w: %d characters",
			ErrTooShort,
			len(bech),
		)
	}
	// Work on a copy so that upper-case input can be normalized in place
	buf := []byte(bech)
	var hasLower, hasUpper bool
	sepPos := -1
	for i, c := range buf {
		if c < minHrpChar || c > maxHrpChar {
			return "", nil, fmt.Errorf(
				"%w: 0x%02x at position %d",
				ErrOutOfRangeCharacter,
				c,
				i,
			)
		}
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
			buf[i] = c + ('a' - 'A')
		case c == separator:
			sepPos = i
		}
	}
	if hasLower && hasUpper {
		return "", nil, ErrMixedCase
	}
	// The HRP may itself contain '1', so only the last one separates
	if sepPos == -1 {
		return "", nil, ErrMissingSeparator
	}
	if sepPos == 0 {
		return "", nil, ErrEmptyHrp
	}
	if sepPos > maxHrpLength {
		return "", nil, fmt.Errorf(
			"%w: %d bytes",
			ErrHrpTooLong,
			sepPos,
		)
	}
	if len(buf)-sepPos-1 < checksumLength {
		return "", nil, ErrChecksumTooShort
	}
	hrp := string(buf[:sepPos])
	dataChars := buf[sepPos+1:]
	words := make([]byte, len(dataChars))
	for i, c := range dataChars {
		v := charValue(c)
		if v == invalidChar {
			return "", nil, fmt.Errorf(
				"%w: %q at position %d",
				ErrInvalidCharacter,
				c,
				sepPos+1+i,
			)
		}
		words[i] = byte(v)
	}
	if !verifyChecksum(hrp, words) {
		return "", nil, ErrInvalidChecksum
	}
	return hrp, words[:len(words)-checksumLength], nil
}

// EncodeFromBytes regroups 8-bit data into padded 5-bit words and encodes them
func EncodeFromBytes(hrp string, data []byte) (string, error) {
	words, err := ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return Encode(hrp, words)
}

// DecodeToBytes decodes a bech32 string and regroups its words into 8-bit
// bytes. Non-zero or excess padding bits are rejected.
func DecodeToBytes(bech string) (string, []byte, error) {
	hrp, words, err := Decode(bech)
	if err != nil {
		return "", nil, err
	}
	data, err := ConvertBits(words, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, data, nil
}

func normalizeHrp(hrp string) (string, error) {
	if len(hrp) == 0 {
		return "", ErrEmptyHrp
	}
	if len(hrp) > maxHrpLength {
		return "", fmt.Errorf(
			"%w: %d bytes",
			ErrHrpTooLong,
			len(hrp),
		)
	}
	var hasLower, hasUpper bool
	for i := 0; i < len(hrp); i++ {
		c := hrp[i]
		if c < minHrpChar || c > maxHrpChar {
			return "", fmt.Errorf(
				"%w: 0x%02x at position %d",
				ErrInvalidHrpCharacters,
				c,
				i,
			)
		}
		if c >= 'a' && c <= 'z' {
			hasLower = true
		} else if c >= 'A' && c <= 'Z' {
			hasUpper = true
		}
	}
	if hasLower && hasUpper {
		return "", ErrMixedCase
	}
	if hasUpper {
		return strings.ToLower(hrp), nil
	}
	return hrp, nil
}
