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
	"errors"
	"reflect"
	"testing"
)

func TestConvertBits(t *testing.T) {
	testDefs := []struct {
		input       []byte
		fromBits    uint8
		toBits      uint8
		pad         bool
		expected    []byte
		expectedErr error
	}{
		{
			input:    []byte{0x0f, 0x1b, 0x2c},
			fromBits: 8,
			toBits:   5,
			pad:      true,
			expected: []byte{1, 28, 13, 18, 24},
		},
		{
			input:    []byte{0xff},
			fromBits: 8,
			toBits:   5,
			pad:      true,
			expected: []byte{31, 28},
		},
		{
			input:    []byte{31, 28},
			fromBits: 5,
			toBits:   8,
			pad:      false,
			expected: []byte{0xff},
		},
		{
			input:    []byte{},
			fromBits: 5,
			toBits:   8,
			pad:      false,
			expected: []byte{},
		},
		{
			input:       []byte{32, 13, 14},
			fromBits:    5,
			toBits:      8,
			pad:         false,
			expectedErr: ErrInvalidValueForBitConversion,
		},
		{
			// 15 bits leave 7 over, which is more than one word of padding
			input:       []byte{1, 10, 13},
			fromBits:    5,
			toBits:      8,
			pad:         false,
			expectedErr: ErrInvalidPadding,
		},
		{
			// Leftover padding bits must be zero
			input:       []byte{31, 29},
			fromBits:    5,
			toBits:      8,
			pad:         false,
			expectedErr: ErrInvalidPadding,
		},
		{
			input:       []byte{1},
			fromBits:    0,
			toBits:      8,
			expectedErr: ErrInvalidBitGroups,
		},
		{
			input:       []byte{1},
			fromBits:    5,
			toBits:      9,
			expectedErr: ErrInvalidBitGroups,
		},
	}
	for _, testDef := range testDefs {
		result, err := ConvertBits(
			testDef.input,
			testDef.fromBits,
			testDef.toBits,
			testDef.pad,
		)
		if testDef.expectedErr != nil {
			if !errors.Is(err, testDef.expectedErr) {
				t.Fatalf(
					"ConvertBits(%v): did not get expected error: got %v, wanted %v",
					testDef.input,
					err,
					testDef.expectedErr,
				)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ConvertBits(%v): unexpected error: %s", testDef.input, err)
		}
		if !reflect.DeepEqual(result, testDef.expected) {
			t.Fatalf(
				"ConvertBits(%v): did not get expected result: got %v, wanted %v",
				testDef.input,
				result,
				testDef.expected,
			)
		}
	}
}

func TestConvertBitsRoundTrip(t *testing.T) {
	for length := 0; length <= 64; length++ {
		data := make([]byte, length)
		for i := range data {
			data[i] = byte(i*37 + length)
		}
		words, err := ConvertBits(data, 8, 5, true)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		result, err := ConvertBits(words, 5, 8, false)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if !reflect.DeepEqual(result, data) {
			t.Fatalf(
				"did not get expected round-trip result: got %x, wanted %x",
				result,
				data,
			)
		}
	}
}
