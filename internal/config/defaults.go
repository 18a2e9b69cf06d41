package config

import "github.com/spf13/viper"

// setDefaults seeds the built-in network profiles. A config file or
// environment variable overrides any of these per key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("network", "mainnet")
	v.SetDefault("database_path", "xrplview.db")

	v.SetDefault("networks.mainnet.native_asset", "XRP")
	v.SetDefault("networks.mainnet.network_id", 0)
	v.SetDefault("networks.mainnet.base_fee_drops", 10)
	v.SetDefault("networks.mainnet.base_reserve_drops", 1000000)
	v.SetDefault("networks.mainnet.owner_reserve_drops", 200000)
	v.SetDefault("networks.mainnet.verify_timeout_seconds", 25)

	v.SetDefault("networks.testnet.native_asset", "XRP")
	v.SetDefault("networks.testnet.network_id", 1)
	v.SetDefault("networks.testnet.base_fee_drops", 10)
	v.SetDefault("networks.testnet.base_reserve_drops", 1000000)
	v.SetDefault("networks.testnet.owner_reserve_drops", 200000)
	v.SetDefault("networks.testnet.verify_timeout_seconds", 25)

	v.SetDefault("networks.devnet.native_asset", "XRP")
	v.SetDefault("networks.devnet.network_id", 2)
	v.SetDefault("networks.devnet.base_fee_drops", 10)
	v.SetDefault("networks.devnet.base_reserve_drops", 1000000)
	v.SetDefault("networks.devnet.owner_reserve_drops", 200000)
	v.SetDefault("networks.devnet.verify_timeout_seconds", 25)

	v.SetDefault("networks.xahau.native_asset", "XAH")
	v.SetDefault("networks.xahau.network_id", 21337)
	v.SetDefault("networks.xahau.base_fee_drops", 10)
	v.SetDefault("networks.xahau.base_reserve_drops", 1000000)
	v.SetDefault("networks.xahau.owner_reserve_drops", 200000)
	v.SetDefault("networks.xahau.verify_timeout_seconds", 25)
}
