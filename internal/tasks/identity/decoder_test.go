package identity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_FullPayload(t *testing.T) {
	d := newDecoder()

	evt, err := d.Decode([]byte(`{"uid":"u123","email":"u123@example.com","photoUrl":"https://photos.example/u.png"}`))
	require.NoError(t, err)
	require.Equal(t, "u123", evt.UID)
	require.NotNil(t, evt.Email)
	require.Equal(t, "u123@example.com", *evt.Email)
	require.NotNil(t, evt.PhotoURL)
	require.Equal(t, "https://photos.example/u.png", *evt.PhotoURL)
}

func TestDecode_MissingOptionalFields(t *testing.T) {
	d := newDecoder()

	evt, err := d.Decode([]byte(`{"uid":"u123"}`))
	require.NoError(t, err)
	require.Equal(t, "u123", evt.UID)
	require.Nil(t, evt.Email)
	require.Nil(t, evt.PhotoURL)
}

func TestDecode_Invalid(t *testing.T) {
	d := newDecoder()

	cases := map[string][]byte{
		"empty payload": nil,
		"not json":      []byte("not-json"),
		"missing uid":   []byte(`{"email":"u123@example.com"}`),
		"blank uid":     []byte(`{"uid":"  "}`),
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := d.Decode(payload)
			require.Error(t, err)
		})
	}
}
