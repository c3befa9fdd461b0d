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

package address

import "errors"

var (
	ErrNotCardanoAddress    = errors.New("not a Cardano Shelley address")
	ErrHrpNetworkMismatch   = errors.New("HRP does not match network ID")
	ErrUnknownAddressType   = errors.New("unknown address type")
	ErrUnknownNetworkId     = errors.New("unknown network id")
	ErrMissingStakeHash     = errors.New("specified a staking address type without a stake hash")
	ErrInvalidPayloadLength = errors.New("invalid address payload length")

	ErrNotAssetFingerprint      = errors.New("not a native asset fingerprint")
	ErrInvalidFingerprintLength = errors.New("invalid native asset fingerprint length")
)
