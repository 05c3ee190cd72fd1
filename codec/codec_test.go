package codec

import (
	"encoding/binary"
	"runtime"
	"strings"
	"testing"

	"github.com/rawbytedev/fricgan/checked"
	"github.com/rawbytedev/fricgan/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRoundTripAllCapabilities(t *testing.T) {
	values := map[config.Capability][]string{
		config.U8:        {"0", "255", "7"},
		config.I8:        {"-128", "127", "-1"},
		config.U16:       {"65535", "300"},
		config.I16:       {"-32768", "1234"},
		config.U32:       {"4294967295", "0"},
		config.I32:       {"-2147483648", "42"},
		config.U64:       {"18446744073709551615"},
		config.I64:       {"-9223372036854775808", "9223372036854775807"},
		config.F32:       {"3.5", "-0.25", "1e+10"},
		config.F64:       {"3.141592653589793", "-1e-300"},
		config.VLQ32:     {"0", "127", "128", "300", "4294967295"},
		config.VLQ64:     {"18446744073709551615", "16384"},
		config.String:    {"", "hello", "wörld"},
		config.VLQString: {"", "hello", strings.Repeat("x", 200)},
	}
	require.Len(t, values, len(config.Capabilities()))

	for _, isChecked := range []bool{false, true} {
		r := NewRegistry(config.AllFeatures, isChecked)
		for c, texts := range values {
			for _, text := range texts {
				enc, err := r.Encode(c, text)
				require.NoError(t, err, "%s %q", c, text)

				got, n, err := r.Decode(c, append(enc, 0xEE))
				require.NoError(t, err, "%s %q", c, text)
				assert.Equal(t, len(enc), n, "%s %q", c, text)
				assert.Equal(t, text, got, "%s", c)
			}
		}
	}
}

func TestEncodeLayout(t *testing.T) {
	r := NewRegistry(config.AllFeatures, false)

	out, err := r.Encode(config.VLQ32, "300")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAC, 0x02}, out)

	out, err = r.Encode(config.U8, "0x7f")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x7F}, out)

	out, err = r.Encode(config.U32, "0x01020304")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), binary.NativeEndian.Uint32(out))

	out, err = r.Encode(config.String, "abc")
	require.NoError(t, err)
	require.Len(t, out, 7)
	assert.Equal(t, uint32(3), binary.NativeEndian.Uint32(out))
	assert.Equal(t, "abc", string(out[4:]))

	out, err = r.Encode(config.VLQString, "abc")
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 'a', 'b', 'c'}, out)
}

func TestDisabledCapability(t *testing.T) {
	r := NewRegistry(config.Features(0).With(config.U8), false)
	assert.True(t, r.Enabled(config.U8))
	assert.False(t, r.Enabled(config.U16))
	assert.Equal(t, []config.Capability{config.U8}, r.Capabilities())

	_, err := r.Encode(config.U16, "1")
	require.ErrorIs(t, err, ErrDisabled)
	_, _, err = r.Decode(config.VLQString, []byte{0})
	require.ErrorIs(t, err, ErrDisabled)

	var none Registry
	_, err = none.Encode(config.U8, "1")
	require.ErrorIs(t, err, ErrDisabled)
}

func TestParseErrors(t *testing.T) {
	r := NewRegistry(config.AllFeatures, false)
	tests := []struct {
		c    config.Capability
		text string
	}{
		{config.U8, "256"},
		{config.U8, "-1"},
		{config.I8, "128"},
		{config.U32, "nope"},
		{config.F32, "1e39"},
		{config.F64, "x"},
		{config.VLQ32, "4294967296"},
	}
	for _, tt := range tests {
		_, err := r.Encode(tt.c, tt.text)
		require.Error(t, err, "%s %q", tt.c, tt.text)
		assert.Contains(t, err.Error(), tt.c.String())
	}
}

func TestUncheckedFault(t *testing.T) {
	r := NewRegistry(config.AllFeatures, false)
	_, _, err := r.Decode(config.U64, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrFault)

	_, _, err = r.Decode(config.U8, nil)
	require.ErrorIs(t, err, ErrFault)

	_, _, err = r.Decode(config.String, []byte{8, 0, 0, 0, 'a'})
	require.ErrorIs(t, err, ErrFault)
}

func TestUncheckedOversizedLengthDoesNotAllocate(t *testing.T) {
	r := NewRegistry(config.AllFeatures, false)
	inputs := map[config.Capability][]byte{
		config.String:    {0xFF, 0xFF, 0xFF, 0xFF, 'x'},
		config.VLQString: {0xFF, 0xFF, 0xFF, 0xFF, 0x0F, 'x'},
	}
	for c, data := range inputs {
		t.Run(c.String(), func(t *testing.T) {
			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			_, n, err := r.Decode(c, data)
			runtime.ReadMemStats(&after)

			require.ErrorIs(t, err, ErrFault)
			assert.Zero(t, n)
			assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
		})
	}
}

func TestCheckedErrors(t *testing.T) {
	r := NewRegistry(config.AllFeatures, true)
	assert.True(t, r.Checked())

	_, _, err := r.Decode(config.U64, []byte{1, 2, 3})
	require.ErrorIs(t, err, checked.ErrShortBuffer)
	require.NotErrorIs(t, err, ErrFault)

	_, _, err = r.Decode(config.VLQ32, []byte{0x81, 0x00})
	require.ErrorIs(t, err, checked.ErrNonCanonical)

	_, _, err = r.Decode(config.VLQ32, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x1F})
	require.ErrorIs(t, err, checked.ErrOverflow)

	_, _, err = r.Decode(config.VLQString, []byte{5, 'a'})
	require.ErrorIs(t, err, checked.ErrShortBuffer)
}

func TestUncheckedVLQIsLenient(t *testing.T) {
	r := NewRegistry(config.AllFeatures, false)
	got, n, err := r.Decode(config.VLQ32, []byte{0x81, 0x00})
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Equal(t, 2, n)
}

func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Checked = true
	cfg.Features = []string{"f32"}
	r, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.True(t, r.Checked())
	assert.Equal(t, []config.Capability{config.F32}, r.Capabilities())

	cfg.Features = []string{"f128"}
	_, err = FromConfig(cfg)
	require.Error(t, err)
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := NewRegistry(config.AllFeatures, false, WithLogger(zap.New(core)))

	_, err := r.Encode(config.VLQ64, "300")
	require.NoError(t, err)
	_, _, err = r.Decode(config.I32, []byte{1})
	require.ErrorIs(t, err, ErrFault)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "encoded", entries[0].Message)
	assert.EqualValues(t, 2, entries[0].ContextMap()["bytes"])
	assert.Equal(t, "codec fault", entries[1].Message)
	assert.Equal(t, "i32", entries[1].ContextMap()["capability"])
}
