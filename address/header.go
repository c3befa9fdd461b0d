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

import "fmt"

const (
	AddressHeaderTypeMask    = 0xF0
	AddressHeaderNetworkMask = 0x0F
	AddressHashSize          = 28

	AddressNetworkTestnet = 0
	AddressNetworkMainnet = 1

	AddressTypeKeyKey        = 0b0000
	AddressTypeScriptKey     = 0b0001
	AddressTypeKeyScript     = 0b0010
	AddressTypeScriptScript  = 0b0011
	AddressTypeKeyPointer    = 0b0100
	AddressTypeScriptPointer = 0b0101
	AddressTypeKeyNone       = 0b0110
	AddressTypeScriptNone    = 0b0111

	// Stake address header prefixes
	StakeTypeKey    = 0b1110
	StakeTypeScript = 0b1111
)

const (
	HrpMainnet      = "addr"
	HrpTestnet      = "addr_test"
	HrpStakeMainnet = "stake"
	HrpStakeTestnet = "stake_test"
	HrpAsset        = "asset"
)

// Header nibbles indexed by address type and network id
var (
	addressTypeNibbles = [...]uint8{
		AddressTypeKeyKey,
		AddressTypeScriptKey,
		AddressTypeKeyScript,
		AddressTypeScriptScript,
		AddressTypeKeyPointer,
		AddressTypeScriptPointer,
		AddressTypeKeyNone,
		AddressTypeScriptNone,
	}
	networkIdNibbles = [...]uint8{
		AddressNetworkTestnet,
		AddressNetworkMainnet,
	}
)

func addressTypeNibble(addrType uint8) (uint8, error) {
	if int(addrType) >= len(addressTypeNibbles) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownAddressType, addrType)
	}
	return addressTypeNibbles[addrType], nil
}

func networkIdNibble(networkId uint8) (uint8, error) {
	if int(networkId) >= len(networkIdNibbles) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNetworkId, networkId)
	}
	return networkIdNibbles[networkId], nil
}

// stakePrefixNibble returns the stake address header prefix for an address
// type, and false when the type has no stake address form
func stakePrefixNibble(addrType uint8) (uint8, bool) {
	switch addrType {
	case AddressTypeKeyKey, AddressTypeScriptKey:
		return StakeTypeKey, true
	case AddressTypeKeyScript, AddressTypeScriptScript:
		return StakeTypeScript, true
	default:
		return 0, false
	}
}

func buildHeader(typeNibble uint8, networkNibble uint8) byte {
	return (typeNibble << 4) | (networkNibble & AddressHeaderNetworkMask)
}

func splitHeader(header byte) (uint8, uint8) {
	return (header & AddressHeaderTypeMask) >> 4, header & AddressHeaderNetworkMask
}

func addressHrp(networkId uint8) string {
	if networkId == AddressNetworkMainnet {
		return HrpMainnet
	}
	return HrpTestnet
}

func stakeHrp(networkId uint8) string {
	if networkId == AddressNetworkMainnet {
		return HrpStakeMainnet
	}
	return HrpStakeTestnet
}
