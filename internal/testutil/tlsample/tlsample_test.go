package tlsample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/tlwire/internal/testutil/testlog"
	"github.com/danmuck/tlwire/wire"
)

func TestSentCodeExactBytes(t *testing.T) {
	testlog.Start(t)
	in := &AuthSentCode{
		Type:          &AuthSentCodeTypeApp{Length: 5},
		PhoneCodeHash: "abc",
		Timeout:       60,
	}
	data, err := wire.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x86, 0x59, 0xbb, 0x3d, // auth.sentCodeTypeApp
		0x05, 0x00, 0x00, 0x00,
		0x03, 'a', 'b', 'c',
		0x3c, 0x00, 0x00, 0x00,
	}, data)

	var out AuthSentCode
	require.NoError(t, wire.Unmarshal(data, &out))
	assert.Equal(t, in, &out)
}

func TestConfigSimpleExactBytes(t *testing.T) {
	testlog.Start(t)
	in := &HelpConfigSimple{
		Date:      1,
		DCMatrix:  [][]int32{{2}, {}},
		AuthCodes: []AuthSentCodeType{&AuthSentCodeTypeSms{Length: 6}},
	}
	data, err := wire.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
		0xa2, 0xbb, 0x00, 0xc0, // auth.sentCodeTypeSms
		0x06, 0x00, 0x00, 0x00,
	}, data)

	var out HelpConfigSimple
	require.NoError(t, wire.Unmarshal(data, &out))
	assert.Equal(t, in, &out)
}

func TestAuthorizationRoundTripAcrossModules(t *testing.T) {
	testlog.Start(t)
	in := &AuthAuthorization{
		User: &UserCtor{
			ID:        7,
			FirstName: "Ada",
			Peers: []InputPeer{
				&InputPeerEmpty{},
				&InputPeerUser{UserID: 1, AccessHash: -1},
			},
			Rating: 4.5,
		},
		Codes: []AuthSentCode{
			{Type: &AuthSentCodeTypeSms{Length: 4}, PhoneCodeHash: "h", Timeout: 30},
		},
	}
	data, err := wire.Marshal(in)
	require.NoError(t, err)
	size, err := wire.Size(in)
	require.NoError(t, err)
	assert.Equal(t, len(data), size)
	assert.Zero(t, len(data)%4)

	var out AuthAuthorization
	require.NoError(t, wire.Unmarshal(data, &out))
	assert.Equal(t, in, &out)
}

func TestUnionTablesDecodeEveryVariant(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		table *wire.Table
		value wire.Variant
	}{
		{UserTable, &UserEmpty{ID: 3}},
		{UserTable, &UserCtor{ID: 4, FirstName: "x", Peers: []InputPeer{}, Rating: 1}},
		{InputPeerTable, &InputPeerEmpty{}},
		{AuthSentCodeTypeTable, &AuthSentCodeTypeApp{Length: 1}},
	}
	for _, tc := range cases {
		data, err := wire.MarshalVariant(tc.value)
		require.NoError(t, err)
		got, err := wire.UnmarshalVariant(data, tc.table)
		require.NoError(t, err, "%T", tc.value)
		assert.Equal(t, tc.value, got)
	}
}

func TestVariantOfAnotherUnionIsUnknown(t *testing.T) {
	testlog.Start(t)
	data, err := wire.MarshalVariant(&InputPeerEmpty{})
	require.NoError(t, err)
	_, err = wire.UnmarshalVariant(data, AuthSentCodeTypeTable)
	assert.ErrorIs(t, err, wire.ErrUnknownDiscriminator)
}

func TestRequestRecordsAreBare(t *testing.T) {
	testlog.Start(t)
	data, err := wire.Marshal(&HelpGetConfigRequest{})
	require.NoError(t, err)
	assert.Empty(t, data)

	req := &AuthSendCodeRequest{PhoneNumber: "+100", APIID: 9, APIHash: "k"}
	data, err = wire.Marshal(req)
	require.NoError(t, err)
	var out AuthSendCodeRequest
	require.NoError(t, wire.Unmarshal(data, &out))
	assert.Equal(t, req, &out)
	assert.Equal(t, uint32(0xa677244f), out.TLID())
}

func TestNilVariantFieldFails(t *testing.T) {
	testlog.Start(t)
	_, err := wire.Marshal(&AuthSentCode{PhoneCodeHash: "x"})
	assert.ErrorIs(t, err, wire.ErrNilVariant)
}
