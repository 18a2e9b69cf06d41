// Package config loads the tool's network-profile configuration: which
// network the interpreter is pointed at and the network facts (native
// asset, reserves, fee schedule) the entity layer needs to decode
// amounts and compute fees.
package config

import (
	"fmt"

	"xrplview/internal/entity"
)

// NetworkProfile describes one connectable network.
type NetworkProfile struct {
	// NativeAsset is the network's native currency symbol
	NativeAsset string `mapstructure:"native_asset"`

	// NetworkID identifies the network on the wire (0 for mainnet)
	NetworkID uint32 `mapstructure:"network_id"`

	// BaseFeeDrops is the reference transaction cost in drops
	BaseFeeDrops int64 `mapstructure:"base_fee_drops"`

	// BaseReserveDrops is the account base reserve in drops
	BaseReserveDrops int64 `mapstructure:"base_reserve_drops"`

	// OwnerReserveDrops is the per-owned-object reserve in drops
	OwnerReserveDrops int64 `mapstructure:"owner_reserve_drops"`

	// VerifyTimeoutSeconds bounds transaction verification polling
	VerifyTimeoutSeconds int `mapstructure:"verify_timeout_seconds"`
}

// Config is the complete tool configuration.
type Config struct {
	// Network selects the active profile by name
	Network string `mapstructure:"network"`

	// Networks holds all known profiles, built-in plus user-defined
	Networks map[string]NetworkProfile `mapstructure:"networks"`

	// DatabasePath is where the interpreted-history store lives
	DatabasePath string `mapstructure:"database_path"`
}

// Active returns the selected network profile.
func (c *Config) Active() (NetworkProfile, error) {
	profile, ok := c.Networks[c.Network]
	if !ok {
		return NetworkProfile{}, fmt.Errorf("unknown network profile: %q", c.Network)
	}
	return profile, nil
}

// NetworkContext converts the active profile into the entity layer's
// network-context shape.
func (c *Config) NetworkContext() (entity.NetworkContext, error) {
	profile, err := c.Active()
	if err != nil {
		return entity.NetworkContext{}, err
	}
	return entity.NetworkContext{
		NativeAsset:       profile.NativeAsset,
		NetworkID:         profile.NetworkID,
		BaseReserveDrops:  profile.BaseReserveDrops,
		OwnerReserveDrops: profile.OwnerReserveDrops,
	}, nil
}
