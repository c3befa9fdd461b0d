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

// Network definitions
var (
	NetworkTestnet = Network{
		Id:   AddressNetworkTestnet,
		Name: "testnet",
	}
	NetworkMainnet = Network{
		Id:   AddressNetworkMainnet,
		Name: "mainnet",
	}
	NetworkPreprod = Network{
		Id:   AddressNetworkTestnet,
		Name: "preprod",
	}
	NetworkPreview = Network{
		Id:   AddressNetworkTestnet,
		Name: "preview",
	}
	NetworkSancho = Network{
		Id:   AddressNetworkTestnet,
		Name: "sanchonet",
	}
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkTestnet,
	NetworkMainnet,
	NetworkPreprod,
	NetworkPreview,
	NetworkSancho,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) (Network, bool) {
	for _, network := range networks {
		if network.Name == name {
			return network, true
		}
	}
	return Network{}, false
}

// NetworkById returns the first predefined network with the given address
// network ID
func NetworkById(id uint8) (Network, bool) {
	for _, network := range networks {
		if network.Id == id {
			return network, true
		}
	}
	return Network{}, false
}

// Network is a named Cardano network and the network ID its addresses carry
type Network struct {
	Id   uint8
	Name string
}

// AddressHrp returns the HRP used for payment addresses on the network
func (n Network) AddressHrp() string {
	return addressHrp(n.Id)
}

// StakeHrp returns the HRP used for stake addresses on the network
func (n Network) StakeHrp() string {
	return stakeHrp(n.Id)
}

func (n Network) String() string {
	return n.Name
}
