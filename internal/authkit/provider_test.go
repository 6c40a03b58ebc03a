package authkit

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-safe-auth/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProvider_AnswersAccountsLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := newProvider("0xABC", "0x13881", mock.NewMockRPCAdapter(ctrl))

	for _, method := range []string{"eth_accounts", "eth_requestAccounts"} {
		var accounts []string
		require.NoError(t, p.Call(context.Background(), method, nil, &accounts))
		assert.Equal(t, []string{"0xABC"}, accounts)
	}

	var chainID string
	require.NoError(t, p.Call(context.Background(), "eth_chainId", nil, &chainID))
	assert.Equal(t, "0x13881", chainID)

	assert.NoError(t, p.Call(context.Background(), "eth_chainId", nil, nil))
}

func TestProvider_ForwardsOtherMethods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rpc := mock.NewMockRPCAdapter(ctrl)
	p := newProvider("0xABC", "0x13881", rpc)

	var balance string
	params := []any{"0xABC", "latest"}
	rpc.EXPECT().
		Call(gomock.Any(), "eth_getBalance", params, &balance).
		DoAndReturn(func(_ context.Context, _ string, _ []any, result any) error {
			*(result.(*string)) = "0x0"
			return nil
		})

	require.NoError(t, p.Call(context.Background(), "eth_getBalance", params, &balance))
	assert.Equal(t, "0x0", balance)
}

func TestProvider_ForwardError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rpc := mock.NewMockRPCAdapter(ctrl)
	rpcErr := errors.New("boom")
	rpc.EXPECT().Call(gomock.Any(), "eth_blockNumber", gomock.Any(), gomock.Any()).Return(rpcErr)

	err := newProvider("0xABC", "0x1", rpc).Call(context.Background(), "eth_blockNumber", nil, nil)
	assert.ErrorIs(t, err, rpcErr)
}

func TestProvider_NoRPCTarget(t *testing.T) {
	err := newProvider("0xABC", "0x1", nil).Call(context.Background(), "eth_blockNumber", nil, nil)
	assert.Error(t, err)
}
