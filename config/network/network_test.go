package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    string
		want    Network
		wantErr string
	}{
		{give: "mainnet", want: Mainnet},
		{give: "MAINNET", want: Mainnet},
		{give: "mainnet-beta", want: Mainnet},
		{give: "devnet", want: Devnet},
		{give: " testnet ", want: Testnet},
		{give: "localnet", want: Localnet},
		{give: "", wantErr: `unknown network ""`},
		{give: "eob", wantErr: `unknown network "eob" (must be one of mainnet, devnet, testnet, localnet)`},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.give)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_FromArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		giveArgs     []string
		giveFallback Network
		want         Network
	}{
		{name: "mainnet", giveArgs: []string{"mainnet"}, giveFallback: Devnet, want: Mainnet},
		{name: "no args", giveArgs: nil, giveFallback: Devnet, want: Devnet},
		{name: "other value", giveArgs: []string{"devnet"}, giveFallback: Testnet, want: Testnet},
		{name: "literal match only", giveArgs: []string{"Mainnet"}, giveFallback: Devnet, want: Devnet},
		{name: "alias is not accepted", giveArgs: []string{"mainnet-beta"}, giveFallback: Devnet, want: Devnet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FromArg(tt.giveArgs, tt.giveFallback))
		})
	}
}

func Test_Network_UnmarshalYAMLKey(t *testing.T) {
	t.Parallel()

	var got map[Network]string
	err := yaml.Unmarshal([]byte("mainnet: a\nDevnet: b\n"), &got)
	require.NoError(t, err)
	assert.Equal(t, map[Network]string{Mainnet: "a", Devnet: "b"}, got)

	err = yaml.Unmarshal([]byte("mars: a\n"), &got)
	require.ErrorContains(t, err, `unknown network "mars"`)
}

func Test_Network_IsMainnet(t *testing.T) {
	t.Parallel()

	assert.True(t, Mainnet.IsMainnet())
	assert.False(t, Devnet.IsMainnet())
	assert.Equal(t, "devnet", Default.String())
}
