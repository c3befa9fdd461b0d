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

const (
	// Charset maps each 5-bit value to its character. The order is significant.
	Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

	separator      = '1'
	checksumLength = 6
	maxHrpLength   = 83
	minHrpChar     = 0x21
	maxHrpChar     = 0x7e
	// Shortest legal string: one HRP byte, the separator and the checksum
	minLength = 1 + 1 + checksumLength

	invalidChar int8 = -1
)

// charsetRev reverses Charset for parsing. Upper-case letters map to the same
// values as their lower-case forms.
var charsetRev = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	15, -1, 10, 17, 21, 20, 26, 30, 7, 5, -1, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
}

// charValue returns the 5-bit value for a data character, or invalidChar
func charValue(c byte) int8 {
	if c&0x80 != 0 {
		return invalidChar
	}
	return charsetRev[c]
}
