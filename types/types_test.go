package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radiusxyz/radius-sdk-go/types"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		want    types.Platform
		wantErr bool
	}{
		{"ethereum", types.PlatformEthereum, false},
		{"Ethereum", types.PlatformEthereum, false},
		{"local", types.PlatformLocal, false},
		{"Local", types.PlatformLocal, false},
		{"solana", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := types.ParsePlatform(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var unsupported *types.UnsupportedPlatformError
				assert.ErrorAs(t, err, &unsupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlatform_JSON(t *testing.T) {
	data, err := json.Marshal(types.PlatformEthereum)
	require.NoError(t, err)
	assert.Equal(t, `"ethereum"`, string(data))

	var p types.Platform
	require.NoError(t, json.Unmarshal([]byte(`"Ethereum"`), &p))
	assert.Equal(t, types.PlatformEthereum, p)

	assert.Error(t, json.Unmarshal([]byte(`"mars"`), &p))
	assert.Error(t, json.Unmarshal([]byte(`42`), &p))
}

func TestParseLivenessProvider(t *testing.T) {
	got, err := types.ParseLivenessProvider("Radius")
	require.NoError(t, err)
	assert.Equal(t, types.LivenessProviderRadius, got)

	_, err = types.ParseLivenessProvider("other")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported liveness provider")
}

func TestParseValidationProvider(t *testing.T) {
	tests := []struct {
		input   string
		want    types.ValidationProvider
		wantErr bool
	}{
		{"eigenlayer", types.ValidationProviderEigenLayer, false},
		{"EigenLayer", types.ValidationProviderEigenLayer, false},
		{"symbiotic", types.ValidationProviderSymbiotic, false},
		{"Symbiotic", types.ValidationProviderSymbiotic, false},
		{"babylon", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := types.ParseValidationProvider(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegisterSequencer_JSON(t *testing.T) {
	msg := types.RegisterSequencer{
		Message: types.RegisterSequencerMessage{
			Platform:        types.PlatformEthereum,
			ServiceProvider: types.LivenessProviderRadius,
			ClusterID:       "cluster-1",
			Address:         "0xabc",
			ExternalRPCURL:  "http://external:8545",
			ClusterRPCURL:   "http://cluster:8545",
		},
		Signature: "0xsig",
	}

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"platform":"ethereum"`)
	assert.Contains(t, string(data), `"service_provider":"radius"`)

	var decoded types.RegisterSequencer
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, msg, decoded)
}

func TestGetBlockResponse_JSON(t *testing.T) {
	raw := `{
  "block_number": 7,
  "encrypted_transaction_list": [{"cipher": "aa"}, null],
  "raw_transaction_list": ["0x01"],
  "block_creator_address": "0xabc",
  "signature": "0xsig",
  "block_commitment": "0xcommit"
}`

	var resp types.GetBlockResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	assert.Equal(t, uint64(7), resp.BlockNumber)
	require.Len(t, resp.EncryptedTransactionList, 2)
	assert.JSONEq(t, `{"cipher": "aa"}`, string(resp.EncryptedTransactionList[0]))
	assert.Equal(t, "null", string(resp.EncryptedTransactionList[1]))
}

func TestSequencerRPCInfo_OptionalEndpoints(t *testing.T) {
	var info types.SequencerRPCInfo
	require.NoError(t, json.Unmarshal([]byte(`{"address": "0xabc", "external_rpc_url": null, "cluster_rpc_url": "http://c"}`), &info))

	assert.Nil(t, info.ExternalRPCURL)
	require.NotNil(t, info.ClusterRPCURL)
	assert.Equal(t, "http://c", *info.ClusterRPCURL)
}
