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
	"fmt"

	"github.com/blinklabs-io/cardano-bech32/bech32"
)

// AssetFingerprint identifies a native asset by policy ID and asset name as
// described in CIP-0014
type AssetFingerprint struct {
	policyId  []byte
	assetName []byte
}

func NewAssetFingerprint(policyId []byte, assetName []byte) AssetFingerprint {
	return AssetFingerprint{
		policyId:  policyId,
		assetName: assetName,
	}
}

// Hash returns the Blake2b-160 digest of the policy ID followed by the asset
// name
func (a AssetFingerprint) Hash() Blake2b160 {
	return Blake2b160Hash(a.policyId, a.assetName)
}

func (a AssetFingerprint) String() string {
	encoded, err := bech32.EncodeFromBytes(HrpAsset, a.Hash().Bytes())
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

// HashNativeAsset returns the hex fingerprint digest for a hex policy ID and
// hex asset name
func HashNativeAsset(policyId string, assetName string) (string, error) {
	fp, err := newAssetFingerprintFromHex(policyId, assetName)
	if err != nil {
		return "", err
	}
	return fp.Hash().String(), nil
}

// EncodeNativeAsset returns the asset1... fingerprint for a hex policy ID and
// hex asset name
func EncodeNativeAsset(policyId string, assetName string) (string, error) {
	fp, err := newAssetFingerprintFromHex(policyId, assetName)
	if err != nil {
		return "", err
	}
	return fp.String(), nil
}

// DecodeNativeAsset validates a fingerprint and returns its hex digest
func DecodeNativeAsset(fingerprint string) (string, error) {
	hrp, data, err := bech32.DecodeToBytes(fingerprint)
	if err != nil {
		return "", err
	}
	if hrp != HrpAsset {
		return "", fmt.Errorf("%w: HRP %q", ErrNotAssetFingerprint, hrp)
	}
	if len(data) != Blake2b160Size {
		return "", fmt.Errorf(
			"%w: %d bytes",
			ErrInvalidFingerprintLength,
			len(data),
		)
	}
	return NewBlake2b160(data).String(), nil
}

func newAssetFingerprintFromHex(
	policyId string,
	assetName string,
) (AssetFingerprint, error) {
	policyIdBytes, err := decodeHexField("policy ID", policyId)
	if err != nil {
		return AssetFingerprint{}, err
	}
	assetNameBytes, err := decodeHexField("asset name", assetName)
	if err != nil {
		return AssetFingerprint{}, err
	}
	return NewAssetFingerprint(policyIdBytes, assetNameBytes), nil
}
