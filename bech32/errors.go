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

import "errors"

var (
	ErrTooShort             = errors.New("bech32 string is too short")
	ErrOutOfRangeCharacter  = errors.New("out of range character in bech32 string")
	ErrMixedCase            = errors.New("data contains mixture of upper and lower case characters")
	ErrMissingSeparator     = errors.New("missing separator character")
	ErrEmptyHrp             = errors.New("HRP too short")
	ErrHrpTooLong           = errors.New("HRP too long")
	ErrInvalidHrpCharacters = errors.New("invalid characters in HRP")
	ErrChecksumTooShort     = errors.New("too short checksum")
	ErrInvalidCharacter     = errors.New("invalid characters in bech32 data")
	ErrInvalidChecksum      = errors.New("invalid bech32 checksum")
	ErrInvalidDataWord      = errors.New("data word exceeds 5 bits")

	ErrInvalidValueForBitConversion = errors.New("invalid value for convert bits")
	ErrInvalidPadding               = errors.New("invalid padding in converted data")
	ErrInvalidBitGroups             = errors.New("bit group sizes must be between 1 and 8")

	ErrInvalidHex = errors.New("invalid hex string")
)
