package model

// Network identifies the chain the wallet talks to
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkLocal   Network = "local"
)

// NetworkInfo describes a known network
type NetworkInfo struct {
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
	ChainID uint32 `json:"chainId"`
}

// Networks lists the built-in networks
var Networks = map[Network]NetworkInfo{
	NetworkMainnet: {Name: "Mainnet", RPCURL: "https://mainnet-rpc.parthenon-chain.io", ChainID: 1},
	NetworkTestnet: {Name: "Testnet", RPCURL: "https://testnet-rpc.parthenon-chain.io", ChainID: 2},
	NetworkLocal:   {Name: "Local", RPCURL: "http://localhost:8545", ChainID: 31337},
}

// Settings is the non-sensitive application settings record
type Settings struct {
	Network Network `json:"network"`
	Theme   string  `json:"theme"`
}

// DefaultSettings returns settings used when nothing was saved yet
func DefaultSettings() Settings {
	return Settings{Network: NetworkTestnet, Theme: "system"}
}
