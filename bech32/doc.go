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

// Package bech32 implements the Bech32 text encoding described in BIP-0173.
//
// The package works at the level of 5-bit words. Encode and Decode convert
// between a human-readable part plus word sequence and the checksummed text
// form, and ConvertBits regroups words to and from 8-bit bytes. The alternate
// Bech32m checksum constant from BIP-0350 is not supported.
//
// Unlike the BIP-0173 reference, no overall length limit is applied, since
// Cardano addresses routinely exceed 90 characters. The human-readable part
// is still limited to 83 bytes.
package bech32
