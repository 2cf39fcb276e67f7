package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_GCSNotification(t *testing.T) {
	d := newDecoder()

	evt, err := d.Decode([]byte(`{
		"bucket": "yt-raw-videos-deepencoding-clone",
		"name": "u123-1700000000000.mp4",
		"generation": "1764322",
		"size": "4194304",
		"contentType": "video/mp4"
	}`))
	require.NoError(t, err)
	require.Equal(t, "yt-raw-videos-deepencoding-clone", evt.Bucket)
	require.Equal(t, "u123-1700000000000.mp4", evt.ObjectName)
	require.Equal(t, "1764322", evt.Generation)
	require.Equal(t, int64(4194304), evt.SizeBytes)
	require.Equal(t, "video/mp4", evt.ContentType)
}

func TestDecode_SizeOptional(t *testing.T) {
	d := newDecoder()

	evt, err := d.Decode([]byte(`{"bucket":"b","name":"u1-1700000000000.mp4"}`))
	require.NoError(t, err)
	require.Zero(t, evt.SizeBytes)
}

func TestDecode_Invalid(t *testing.T) {
	d := newDecoder()

	cases := map[string][]byte{
		"empty payload":  nil,
		"not json":       []byte("{"),
		"missing bucket": []byte(`{"name":"u1-1700000000000.mp4"}`),
		"missing name":   []byte(`{"bucket":"b"}`),
		"bad size":       []byte(`{"bucket":"b","name":"n.mp4","size":"lots"}`),
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := d.Decode(payload)
			require.Error(t, err)
		})
	}
}
