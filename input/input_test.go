package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	type testCase struct {
		in   string
		want Code
	}
	cases := []testCase{
		{"KEY_A", KeyA},
		{"a", KeyA},
		{"Esc", KeyEsc},
		{"escape", KeyEsc},
		{"shift", KeyLeftShift},
		{"F1", KeyF1},
		{" key_leftshift ", KeyLeftShift},
		{"37", KeyK},
		{"0x1e", KeyA},
		{"0X02", Code(2)},
		{"700", Code(700)},
		{"0", Code(11)},
		{"1", Code(2)},
		{"KEY_9", Code(10)},
		{"10", Code(10)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCode(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "NOPE", "0x0", "0x", "0xzz", "768", "-3"} {
		_, err := ParseCode(bad)
		assert.Error(t, err, bad)
	}
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "KEY_A", KeyA.String())
	assert.Equal(t, "KEY_LEFTSHIFT", KeyLeftShift.String())
	assert.Equal(t, "700", Code(700).String())

	for _, c := range KnownCodes() {
		back, err := ParseCode(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

func TestKeySet(t *testing.T) {
	s := NewKeySet(KeyA, KeyK, NoCode, MaxCode+1)
	assert.True(t, s.Has(KeyA))
	assert.True(t, s.Has(KeyK))
	assert.False(t, s.Has(KeyD))
	assert.False(t, s.Has(NoCode))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Code{KeyA, KeyK}, s.Codes())

	s2 := s.Without(KeyA)
	assert.True(t, s.Has(KeyA), "Without must not mutate the receiver")
	assert.False(t, s2.Has(KeyA))

	assert.Equal(t, NewKeySet(KeyK, KeyA), s)
	assert.True(t, NewKeySet(MaxCode).Has(MaxCode))
	assert.Equal(t, "{KEY_A KEY_K}", s.String())
}

func TestKeyTracker(t *testing.T) {
	var tr keyTracker
	tr.apply(KeyA, valuePressed)
	tr.apply(KeyA, valueRepeated)
	tr.apply(KeyD, valuePressed)
	tr.apply(KeyA, valueReleased)

	assert.Equal(t, NewKeySet(KeyD), tr.snapshot())
	assert.Equal(t, []Event{
		Down(KeyA),
		{Kind: KeyDown, Code: KeyA, Repeat: true},
		Down(KeyD),
	}, tr.drain())
	assert.Nil(t, tr.drain())

	tr.push(QuitEvent())
	assert.Equal(t, []Event{QuitEvent()}, tr.drain())
}

func TestScript(t *testing.T) {
	s := NewScript(
		Step{Events: []Event{Down(KeyA)}, Pressed: NewKeySet(KeyA)},
		Step{},
	)
	assert.Equal(t, []Event{Down(KeyA)}, s.PollEvents())
	assert.Equal(t, NewKeySet(KeyA), s.Pressed())
	assert.Empty(t, s.PollEvents())
	assert.Equal(t, KeySet{}, s.Pressed())
	assert.Equal(t, []Event{QuitEvent()}, s.PollEvents())
	assert.Equal(t, 3, s.Polls())

	require.NoError(t, s.Close())
	assert.True(t, s.Closed())
}
