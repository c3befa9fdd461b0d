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

import "testing"

func TestNetworkByName(t *testing.T) {
	testDefs := []struct {
		name        string
		expectedId  uint8
		expectedHrp string
	}{
		{name: "mainnet", expectedId: AddressNetworkMainnet, expectedHrp: HrpMainnet},
		{name: "testnet", expectedId: AddressNetworkTestnet, expectedHrp: HrpTestnet},
		{name: "preprod", expectedId: AddressNetworkTestnet, expectedHrp: HrpTestnet},
		{name: "preview", expectedId: AddressNetworkTestnet, expectedHrp: HrpTestnet},
		{name: "sanchonet", expectedId: AddressNetworkTestnet, expectedHrp: HrpTestnet},
	}
	for _, testDef := range testDefs {
		network, ok := NetworkByName(testDef.name)
		if !ok {
			t.Fatalf("did not find network %s", testDef.name)
		}
		if network.Id != testDef.expectedId {
			t.Fatalf(
				"did not get expected network ID for %s: got %d, wanted %d",
				testDef.name,
				network.Id,
				testDef.expectedId,
			)
		}
		if network.AddressHrp() != testDef.expectedHrp {
			t.Fatalf(
				"did not get expected HRP for %s: got %s, wanted %s",
				testDef.name,
				network.AddressHrp(),
				testDef.expectedHrp,
			)
		}
	}
	if _, ok := NetworkByName("invalid"); ok {
		t.Fatalf("did not expect to find network %q", "invalid")
	}
}

func TestNetworkById(t *testing.T) {
	network, ok := NetworkById(AddressNetworkMainnet)
	if !ok || network.Name != "mainnet" {
		t.Fatalf("did not get expected network: got %s", network)
	}
	if network.StakeHrp() != HrpStakeMainnet {
		t.Fatalf("did not get expected stake HRP: got %s", network.StakeHrp())
	}
	network, ok = NetworkById(AddressNetworkTestnet)
	if !ok || network.Name != "testnet" {
		t.Fatalf("did not get expected network: got %s", network)
	}
	if network.StakeHrp() != HrpStakeTestnet {
		t.Fatalf("did not get expected stake HRP: got %s", network.StakeHrp())
	}
	if _, ok := NetworkById(2); ok {
		t.Fatalf("did not expect to find network ID 2")
	}
}
