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

package cbor

const (
	CborTypeByteString uint8 = 0x40
	CborTypeTextString uint8 = 0x60

	// Only the top 3 bits are used to specify the type
	CborTypeMask uint8 = 0xe0
)

// Type returns the CBOR major type of the first item in the data
func Type(data []byte) uint8 {
	if len(data) == 0 {
		return 0
	}
	return data[0] & CborTypeMask
}
