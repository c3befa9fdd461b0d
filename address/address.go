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
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/cardano-bech32/bech32"
)

// Address is a decoded or freshly encoded Cardano Shelley address
type Address struct {
	Address     string `json:"address"     yaml:"address"`
	AddressType uint8  `json:"addressType" yaml:"addressType"`
	NetworkId   uint8  `json:"networkId"   yaml:"networkId"`
	PaymentHash string `json:"paymentHash" yaml:"paymentHash"`
	StakingHash string `json:"stakingHash" yaml:"stakingHash"`
	// StakeAddress is nil when the address type has no stake address form
	StakeAddress *string `json:"stakeAddress" yaml:"stakeAddress"`

	paymentPayload []byte
	stakingPayload []byte
	extraData      []byte
}

// Decode parses a bech32 Cardano address and derives its stake address
func Decode(addr string) (Address, error) {
	if !strings.HasPrefix(addr, HrpMainnet) {
		return Address{}, ErrNotCardanoAddress
	}
	hrp, data, err := bech32.DecodeToBytes(addr)
	if err != nil {
		return Address{}, err
	}
	if len(data) == 0 {
		return Address{}, fmt.Errorf("%w: missing header", ErrInvalidPayloadLength)
	}
	_, networkId := splitHeader(data[0])
	if (networkId != AddressNetworkTestnet && hrp != HrpMainnet) ||
		(networkId == AddressNetworkTestnet && hrp != HrpTestnet) {
		return Address{}, fmt.Errorf(
			"%w: HRP %q, network ID %d",
			ErrHrpNetworkMismatch,
			hrp,
			networkId,
		)
	}
	a := Address{Address: addr}
	if err := a.populateFromBytes(data); err != nil {
		return Address{}, err
	}
	return a, nil
}

// NewAddressFromBytes returns an Address based on the raw header and payload
// bytes. The HRP is chosen from the network ID.
func NewAddressFromBytes(data []byte) (Address, error) {
	if len(data) == 0 {
		return Address{}, fmt.Errorf("%w: missing header", ErrInvalidPayloadLength)
	}
	a := Address{}
	if err := a.populateFromBytes(data); err != nil {
		return Address{}, err
	}
	encoded, err := bech32.EncodeFromBytes(addressHrp(a.NetworkId), data)
	if err != nil {
		return Address{}, err
	}
	a.Address = encoded
	return a, nil
}

// Encode builds a bech32 address from its parts. The hashes are hex encoded.
// A stake hash is required for address types 0-5.
func Encode(
	addrType uint8,
	networkId uint8,
	paymentHash string,
	stakeHash string,
) (Address, error) {
	typeNibble, err := addressTypeNibble(addrType)
	if err != nil {
		return Address{}, err
	}
	networkNibble, err := networkIdNibble(networkId)
	if err != nil {
		return Address{}, err
	}
	if addrType < AddressTypeKeyNone && stakeHash == "" {
		return Address{}, ErrMissingStakeHash
	}
	paymentPayload, err := decodeHexField("payment hash", paymentHash)
	if err != nil {
		return Address{}, err
	}
	stakingPayload, err := decodeHexField("stake hash", stakeHash)
	if err != nil {
		return Address{}, err
	}
	a := Address{
		AddressType:    addrType,
		NetworkId:      networkId,
		PaymentHash:    hex.EncodeToString(paymentPayload),
		StakingHash:    hex.EncodeToString(stakingPayload),
		paymentPayload: paymentPayload,
		stakingPayload: stakingPayload,
	}
	if err := a.deriveStakeAddress(); err != nil {
		return Address{}, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteByte(buildHeader(typeNibble, networkNibble))
	buf.Write(paymentPayload)
	buf.Write(stakingPayload)
	a.Address, err = bech32.EncodeFromBytes(addressHrp(networkId), buf.Bytes())
	if err != nil {
		return Address{}, err
	}
	return a, nil
}

// EncodeStakeAddress returns the bech32 stake address for a hex staking hash.
// The boolean is false, with a nil error, for address types that have no
// stake address form.
func EncodeStakeAddress(
	networkId uint8,
	addrType uint8,
	stakeHash string,
) (string, bool, error) {
	if _, ok := stakePrefixNibble(addrType); !ok {
		return "", false, nil
	}
	stakingPayload, err := decodeHexField("stake hash", stakeHash)
	if err != nil {
		return "", false, err
	}
	return encodeStakeAddress(networkId, addrType, stakingPayload)
}

func encodeStakeAddress(
	networkId uint8,
	addrType uint8,
	stakingPayload []byte,
) (string, bool, error) {
	prefix, ok := stakePrefixNibble(addrType)
	if !ok {
		return "", false, nil
	}
	networkNibble, err := networkIdNibble(networkId)
	if err != nil {
		return "", false, err
	}
	data := make([]byte, 0, 1+len(stakingPayload))
	data = append(data, buildHeader(prefix, networkNibble))
	data = append(data, stakingPayload...)
	encoded, err := bech32.EncodeFromBytes(stakeHrp(networkId), data)
	if err != nil {
		return "", false, err
	}
	return encoded, true, nil
}

func (a *Address) populateFromBytes(data []byte) error {
	a.AddressType, a.NetworkId = splitHeader(data[0])
	if _, err := networkIdNibble(a.NetworkId); err != nil {
		return err
	}
	payload := data[1:]
	var stakingLen int
	switch a.AddressType {
	case AddressTypeKeyKey, AddressTypeScriptKey, AddressTypeKeyScript, AddressTypeScriptScript:
		stakingLen = AddressHashSize
	case AddressTypeKeyPointer, AddressTypeScriptPointer:
		// The pointer is carried through as-is
		stakingLen = len(payload) - AddressHashSize
	case AddressTypeKeyNone, AddressTypeScriptNone:
		stakingLen = 0
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAddressType, a.AddressType)
	}
	if len(payload) < AddressHashSize {
		return fmt.Errorf(
			"%w: payment hash has %d bytes",
			ErrInvalidPayloadLength,
			len(payload),
		)
	}
	a.paymentPayload = payload[:AddressHashSize]
	payload = payload[AddressHashSize:]
	if len(payload) < stakingLen {
		return fmt.Errorf(
			"%w: staking hash has %d bytes",
			ErrInvalidPayloadLength,
			len(payload),
		)
	}
	if stakingLen > 0 {
		a.stakingPayload = payload[:stakingLen]
		payload = payload[stakingLen:]
	}
	// Keep any trailing bytes so that Bytes() reproduces the input, see
	// https://github.com/IntersectMBO/cardano-ledger/issues/2729
	if len(payload) > 0 {
		a.extraData = payload
	}
	a.PaymentHash = hex.EncodeToString(a.paymentPayload)
	a.StakingHash = hex.EncodeToString(a.stakingPayload)
	return a.deriveStakeAddress()
}

func (a *Address) deriveStakeAddress() error {
	a.StakeAddress = nil
	stakeAddr, ok, err := encodeStakeAddress(
		a.NetworkId,
		a.AddressType,
		a.stakingPayload,
	)
	if err != nil {
		return err
	}
	if ok {
		a.StakeAddress = &stakeAddr
	}
	return nil
}

// HasStakeAddress reports whether the address type has a stake address form
func (a Address) HasStakeAddress() bool {
	return a.StakeAddress != nil
}

// PaymentKeyHash returns the payment credential hash
func (a Address) PaymentKeyHash() Blake2b224 {
	return NewBlake2b224(a.paymentPayload)
}

// StakeKeyHash returns the staking credential hash. It is zero-valued for
// enterprise and pointer addresses.
func (a Address) StakeKeyHash() Blake2b224 {
	switch a.AddressType {
	case AddressTypeKeyKey, AddressTypeScriptKey, AddressTypeKeyScript, AddressTypeScriptScript:
		return NewBlake2b224(a.stakingPayload)
	default:
		return Blake2b224{}
	}
}

// Bytes returns the raw header and payload bytes for the address
func (a Address) Bytes() ([]byte, error) {
	typeNibble, err := addressTypeNibble(a.AddressType)
	if err != nil {
		return nil, err
	}
	networkNibble, err := networkIdNibble(a.NetworkId)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteByte(buildHeader(typeNibble, networkNibble))
	buf.Write(a.paymentPayload)
	buf.Write(a.stakingPayload)
	buf.Write(a.extraData)
	return buf.Bytes(), nil
}

// String returns the bech32-encoded version of the address
func (a Address) String() string {
	return a.Address
}

func decodeHexField(name string, value string) ([]byte, error) {
	ret, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", name, bech32.ErrInvalidHex, err)
	}
	return ret, nil
}
