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

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/cardano-bech32/cbor"
	"github.com/blinklabs-io/plutigo/data"
)

// MarshalCBOR encodes the raw address bytes as a CBOR bytestring, which is how
// addresses appear in transaction outputs
func (a Address) MarshalCBOR() ([]byte, error) {
	addrBytes, err := a.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get address bytes: %w", err)
	}
	return cbor.Encode(addrBytes)
}

func (a *Address) UnmarshalCBOR(cborData []byte) error {
	if cbor.Type(cborData) != cbor.CborTypeByteString {
		return errors.New("address CBOR is not a bytestring")
	}
	var addrBytes []byte
	if _, err := cbor.Decode(cborData, &addrBytes); err != nil {
		return err
	}
	tmpAddr, err := NewAddressFromBytes(addrBytes)
	if err != nil {
		return err
	}
	*a = tmpAddr
	return nil
}

// ToPlutusData returns the Plutus representation of the address. Pointer
// addresses return nil, since the pointer is not decoded.
func (a Address) ToPlutusData() data.PlutusData {
	// Build payment part
	var paymentPd data.PlutusData
	switch a.AddressType {
	case AddressTypeKeyKey, AddressTypeKeyScript, AddressTypeKeyPointer, AddressTypeKeyNone:
		paymentPd = data.NewConstr(
			0,
			data.NewByteString(a.paymentPayload),
		)
	case AddressTypeScriptKey, AddressTypeScriptScript, AddressTypeScriptPointer, AddressTypeScriptNone:
		paymentPd = data.NewConstr(
			1,
			data.NewByteString(a.paymentPayload),
		)
	default:
		return nil
	}
	// Build stake part
	var stakePd data.PlutusData
	switch a.AddressType {
	case AddressTypeKeyKey, AddressTypeScriptKey:
		stakePd = data.NewConstr(
			0,
			data.NewConstr(
				0,
				data.NewConstr(
					0,
					data.NewByteString(a.stakingPayload),
				),
			),
		)
	case AddressTypeKeyScript, AddressTypeScriptScript:
		stakePd = data.NewConstr(
			0,
			data.NewConstr(
				0,
				data.NewConstr(
					1,
					data.NewByteString(a.stakingPayload),
				),
			),
		)
	case AddressTypeKeyNone, AddressTypeScriptNone:
		stakePd = data.NewConstr(1)
	default:
		return nil
	}
	return data.NewConstr(
		0,
		paymentPd,
		stakePd,
	)
}
