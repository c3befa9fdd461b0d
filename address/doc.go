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

// Package address decodes and encodes Cardano Shelley addresses as described
// in CIP-0019, derives their stake addresses, and computes CIP-0014 native
// asset fingerprints.
//
// Address bytes start with a single header byte: the high nibble holds the
// address type and the low nibble the network id.
//
//	  7 6 5 4 3 2 1 0
//	 ┌─┬─┬─┬─┬─┬─┬─┬─┐
//	 │t│t│t│t│n│n│n│n│
//	 └─┴─┴─┴─┴─┴─┴─┴─┘
//
// Types 0-3 carry a payment and a staking credential hash, types 4-5 a
// payment hash followed by a legacy pointer (passed through unparsed) and
// types 6-7 only a payment hash.
package address
