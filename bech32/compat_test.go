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
	"math/rand"
	"reflect"
	"testing"

	btcbech32 "github.com/btcsuite/btcd/btcutil/bech32"
)

// These tests cross-check the engine against the btcutil implementation

func TestEncodeMatchesBtcutil(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	hrps := []string{"a", "addr", "addr_test", "stake", "asset", "pool", "bc"}
	for i := 0; i < 200; i++ {
		hrp := hrps[i%len(hrps)]
		words := make([]byte, rng.Intn(80))
		for j := range words {
			words[j] = byte(rng.Intn(32))
		}
		result, err := Encode(hrp, words)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected, err := btcbech32.Encode(hrp, words)
		if err != nil {
			t.Fatalf("unexpected btcutil error: %s", err)
		}
		if result != expected {
			t.Fatalf(
				"did not get expected result: got %s, wanted %s",
				result,
				expected,
			)
		}
		expectedHrp, expectedWords, err := btcbech32.DecodeNoLimit(result)
		if err != nil {
			t.Fatalf("unexpected btcutil error: %s", err)
		}
		decodedHrp, decodedWords, err := Decode(result)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if decodedHrp != expectedHrp ||
			!reflect.DeepEqual(decodedWords, expectedWords) {
			t.Fatalf(
				"did not get expected decode result: got (%s, %v), wanted (%s, %v)",
				decodedHrp,
				decodedWords,
				expectedHrp,
				expectedWords,
			)
		}
	}
}

func TestConvertBitsMatchesBtcutil(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		data := make([]byte, rng.Intn(64))
		rng.Read(data)
		result, err := ConvertBits(data, 8, 5, true)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected, err := btcbech32.ConvertBits(data, 8, 5, true)
		if err != nil {
			t.Fatalf("unexpected btcutil error: %s", err)
		}
		if len(result) != len(expected) ||
			(len(result) > 0 && !reflect.DeepEqual(result, expected)) {
			t.Fatalf(
				"did not get expected result: got %v, wanted %v",
				result,
				expected,
			)
		}
	}
}
