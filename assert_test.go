//go:build fricgan_assert

package fricgan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssertionMessages(t *testing.T) {
	require.PanicsWithValue(t, "fricgan: Write needs 3 bytes, buffer has 2", func() {
		Write([]byte{1, 2, 3}, make([]byte, 2))
	})
	require.PanicsWithValue(t, "fricgan: Read needs 4 bytes, buffer has 1", func() {
		var v uint32
		DecodeFixed(&v, []byte{1})
	})
	require.PanicsWithValue(t, "fricgan: EncodeVLQ needs 2 bytes, buffer has 1", func() {
		EncodeVLQ(uint32(128), make([]byte, 1))
	})
	require.PanicsWithValue(t, "fricgan: DecodeVLQ needs 2 bytes, buffer has 1", func() {
		var v uint64
		DecodeVLQ(&v, []byte{0x80})
	})
	require.PanicsWithValue(t, "fricgan: EncodeFixed needs 1 bytes, buffer has 0", func() {
		EncodeFixed(int8(1), nil)
	})
}
