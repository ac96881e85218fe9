package schema

import (
	"bytes"
	"testing"

	"github.com/DigitalSmile/ffm-io/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChipInfoLayout tests the fixed 68-byte shape of the record.
func TestChipInfoLayout(t *testing.T) {
	t.Parallel()

	l := ChipInfoLayout()

	assert.Equal(t, 68, l.Width())
	require.Len(t, l.Fields(), 3)
	assert.Equal(t, layout.KindBytes, l.Fields()[0].Kind)
	assert.Equal(t, layout.KindUint32, l.Fields()[2].Kind)
}

// TestChipInfo_Marshal_Scenario tests the concrete wire shape of a partially
// filled record against a pre-filled buffer.
func TestChipInfo_Marshal_Scenario(t *testing.T) {
	t.Parallel()

	info := &ChipInfo{
		Name:  []byte("gpio5"),
		Label: []byte("pins"),
		Lines: 32,
	}

	buf := bytes.Repeat([]byte{0xAA}, 68)
	require.NoError(t, info.MarshalInto(buf))

	assert.Equal(t, []byte("gpio5"), buf[0:5])
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 27), buf[5:32], "unused name span should keep prior content")
	assert.Equal(t, []byte("pins"), buf[32:36])
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 28), buf[36:64], "unused label span should keep prior content")
	assert.Equal(t, []byte{0x20, 0x00, 0x00, 0x00}, buf[64:68])
}

// TestChipInfo_RoundTrip tests that marshaled records unmarshal with byte
// fields padded to capacity and the line count bit-exact.
func TestChipInfo_RoundTrip(t *testing.T) {
	t.Parallel()

	info := &ChipInfo{
		Name:  []byte("gpiochip0"),
		Label: []byte("pinctrl-bcm2835"),
		Lines: 54,
	}

	buf := make([]byte, ChipInfoLayout().Width())
	require.NoError(t, info.MarshalInto(buf))

	decoded, err := UnmarshalChipInfo(buf)
	require.NoError(t, err)

	assert.Len(t, decoded.Name, ChipNameSize)
	assert.True(t, bytes.HasPrefix(decoded.Name, []byte("gpiochip0")))
	assert.Len(t, decoded.Label, ChipNameSize)
	assert.True(t, bytes.HasPrefix(decoded.Label, []byte("pinctrl-bcm2835")))
	assert.Equal(t, uint32(54), decoded.Lines)
}

// TestChipInfo_Marshal_Fail_Overflow tests rejection of an overlong name.
func TestChipInfo_Marshal_Fail_Overflow(t *testing.T) {
	t.Parallel()

	info := &ChipInfo{
		Name: bytes.Repeat([]byte("n"), 40),
	}

	buf := make([]byte, ChipInfoLayout().Width())
	require.ErrorIs(t, info.MarshalInto(buf), layout.ErrFieldOverflow)
}

// TestUnmarshalChipInfo_Fail_ShortBuffer tests rejection of a 67-byte buffer.
func TestUnmarshalChipInfo_Fail_ShortBuffer(t *testing.T) {
	t.Parallel()

	_, err := UnmarshalChipInfo(make([]byte, 67))
	require.ErrorIs(t, err, layout.ErrBufferTooSmall)
}

// TestChipInfo_String tests log rendering with NUL padding stripped.
func TestChipInfo_String(t *testing.T) {
	t.Parallel()

	info := &ChipInfo{
		Name:  append([]byte("gpiochip0"), make([]byte, 23)...),
		Label: append([]byte("pinctrl"), make([]byte, 25)...),
		Lines: 54,
	}

	assert.Equal(t, "ChipInfo{name=gpiochip0, label=pinctrl, lines=54}", info.String())
}
