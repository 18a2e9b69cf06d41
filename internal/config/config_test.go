package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultProfiles(t *testing.T) {
	config, err := LoadDefault()
	require.NoError(t, err)

	require.Equal(t, "mainnet", config.Network)

	profile, err := config.Active()
	require.NoError(t, err)
	require.Equal(t, "XRP", profile.NativeAsset)
	require.Equal(t, uint32(0), profile.NetworkID)
	require.Equal(t, int64(10), profile.BaseFeeDrops)

	xahau, ok := config.Networks["xahau"]
	require.True(t, ok)
	require.Equal(t, "XAH", xahau.NativeAsset)
	require.Equal(t, uint32(21337), xahau.NetworkID)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xrplview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
network: xahau
database_path: /tmp/history.db
networks:
  xahau:
    native_asset: XAH
    network_id: 21337
    base_fee_drops: 12
    base_reserve_drops: 1000000
    owner_reserve_drops: 2000000
    verify_timeout_seconds: 30
`), 0o600))

	config, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "xahau", config.Network)
	require.Equal(t, "/tmp/history.db", config.DatabasePath)

	profile, err := config.Active()
	require.NoError(t, err)
	require.Equal(t, int64(12), profile.BaseFeeDrops)
	require.Equal(t, int64(2000000), profile.OwnerReserveDrops)
	require.Equal(t, 30, profile.VerifyTimeoutSeconds)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/xrplview.yaml")
	require.Error(t, err)
}

func TestLoadRejectsUnknownNetwork(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xrplview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("network: nonet\n"), 0o600))

	_, err := Load(path)
	require.ErrorContains(t, err, "unknown network profile")
}

func TestNetworkContextFromProfile(t *testing.T) {
	config, err := LoadDefault()
	require.NoError(t, err)
	config.Network = "xahau"

	net, err := config.NetworkContext()
	require.NoError(t, err)
	require.Equal(t, "XAH", net.NativeAsset)
	require.Equal(t, uint32(21337), net.NetworkID)
}
