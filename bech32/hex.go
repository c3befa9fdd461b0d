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
	"encoding/hex"
	"fmt"
)

// HexToWords decodes a hex string and regroups the bytes into padded 5-bit
// words
func HexToWords(hexStr string) ([]byte, error) {
	data, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return ConvertBits(data, 8, 5, true)
}

// WordsToHex regroups 5-bit words into bytes and renders them as lower-case
// hex, two digits per byte
func WordsToHex(words []byte, pad bool) (string, error) {
	data, err := ConvertBits(words, 5, 8, pad)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}
