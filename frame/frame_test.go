package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padlink/binding"
	"github.com/Alia5/padlink/frame"
	"github.com/Alia5/padlink/input"
)

// fullTable binds the full profile to a WASD / IJKL / row of letters layout.
func fullTable() binding.Table {
	return binding.TableOf(map[binding.Action]input.Code{
		binding.LStickUp:    input.KeyW,
		binding.LStickDown:  input.KeyS,
		binding.LStickLeft:  input.KeyA,
		binding.LStickRight: input.KeyD,
		binding.RStickUp:    input.KeyArrowUp,
		binding.RStickDown:  input.KeyArrowDown,
		binding.RStickLeft:  input.KeyArrowLeft,
		binding.RStickRight: input.KeyArrowRight,
		binding.BtnA:        input.KeyK,
		binding.BtnB:        input.KeyJ,
		binding.BtnX:        input.KeyL,
		binding.BtnY:        input.Code(24), // O
		binding.BtnL:        input.Code(16), // Q
		binding.BtnR:        input.Code(18), // E
		binding.BtnZL:       input.Code(44), // Z
		binding.BtnZR:       input.Code(45), // X
	})
}

func TestProfilesValid(t *testing.T) {
	require.NoError(t, frame.Full.Validate())
	require.NoError(t, frame.Reduced.Validate())
	assert.Equal(t, 5, frame.Full.Size())
	assert.Equal(t, 3, frame.Reduced.Size())
	assert.True(t, binding.IsComplete(fullTable(), frame.Full.Catalog))
}

func TestEncodeFull(t *testing.T) {
	type testCase struct {
		name    string
		pressed input.KeySet
		want    frame.Packet
	}
	cases := []testCase{
		{
			name: "neutral",
			want: frame.Packet{128, 128, 128, 128, 0},
		},
		{
			name:    "left + A",
			pressed: input.NewKeySet(input.KeyA, input.KeyK),
			want:    frame.Packet{0, 128, 128, 128, 1},
		},
		{
			name:    "left stick down right",
			pressed: input.NewKeySet(input.KeyS, input.KeyD),
			want:    frame.Packet{255, 255, 128, 128, 0},
		},
		{
			name:    "both directions favour negative",
			pressed: input.NewKeySet(input.KeyA, input.KeyD, input.KeyArrowUp, input.KeyArrowDown),
			want:    frame.Packet{0, 128, 128, 0, 0},
		},
		{
			name:    "right stick",
			pressed: input.NewKeySet(input.KeyArrowLeft, input.KeyArrowDown),
			want:    frame.Packet{128, 128, 0, 255, 0},
		},
		{
			name:    "all buttons",
			pressed: input.NewKeySet(input.KeyK, input.KeyJ, input.KeyL, 24, 16, 18, 44, 45),
			want:    frame.Packet{128, 128, 128, 128, 0xff},
		},
		{
			name:    "zl + zr",
			pressed: input.NewKeySet(44, 45),
			want:    frame.Packet{128, 128, 128, 128, 0xc0},
		},
		{
			name:    "unbound keys ignored",
			pressed: input.NewKeySet(input.KeySpace, input.KeyEnter),
			want:    frame.Packet{128, 128, 128, 128, 0},
		},
	}

	table := fullTable()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := frame.Full.Encode(tc.pressed, table)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, frame.Full.Encode(tc.pressed, table), "encoding must be deterministic")
		})
	}
}

func TestEncodeScenarioPartialCatalog(t *testing.T) {
	table := binding.TableOf(map[binding.Action]input.Code{
		binding.LStickLeft:  input.KeyA,
		binding.LStickRight: input.KeyD,
		binding.BtnA:        input.KeyK,
	})
	got := frame.Full.Encode(input.NewKeySet(input.KeyA, input.KeyK), table)
	assert.Equal(t, frame.Packet{0, 128, 128, 128, 1}, got)
}

func TestEncodeReduced(t *testing.T) {
	table := frame.Reduced.Defaults
	assert.Equal(t, frame.Packet{128, 128, 1}, frame.Reduced.Encode(input.NewKeySet(input.KeyLeftShift), table))
	assert.Equal(t, frame.Packet{128, 128, 0}, frame.Reduced.Encode(input.KeySet{}, table))
	assert.Equal(t, frame.Packet{0, 0, 1}, frame.Reduced.Encode(input.NewKeySet(input.KeyA, input.KeyW, input.KeyLeftShift), table))
	assert.Equal(t, frame.Packet{0, 255, 0}, frame.Reduced.Encode(input.NewKeySet(input.KeyA, input.KeyD, input.KeyS), table))
}

func TestEncodeDoesNotMutateInputs(t *testing.T) {
	table := fullTable()
	pressed := input.NewKeySet(input.KeyA, input.KeyK)
	tableCopy, pressedCopy := table, pressed

	_ = frame.Full.Encode(pressed, table)
	assert.Equal(t, tableCopy, table)
	assert.Equal(t, pressedCopy, pressed)
}

func TestEncodeMultiByteButtons(t *testing.T) {
	axes := []frame.AxisSpec{frame.StickAxis("x", binding.LStickLeft, binding.LStickRight)}
	buttons := []frame.ButtonSpec{
		{Name: "a", Action: binding.BtnA, Index: 0, Mask: 1},
		{Name: "b", Action: binding.BtnB, Index: 1, Mask: 1},
	}
	table := binding.TableOf(map[binding.Action]input.Code{
		binding.LStickLeft: input.KeyA, binding.LStickRight: input.KeyD,
		binding.BtnA: input.KeyK, binding.BtnB: input.KeyJ,
	})
	assert.Equal(t, frame.Packet{255, 0, 1}, frame.Encode(input.NewKeySet(input.KeyD, input.KeyJ), table, axes, buttons))
}

func TestDecode(t *testing.T) {
	st, err := frame.Full.Decode([]byte{0, 128, 255, 128, 0x21})
	require.NoError(t, err)
	assert.Equal(t, []frame.AxisValue{
		{Name: "lx", Value: 0}, {Name: "ly", Value: 128}, {Name: "rx", Value: 255}, {Name: "ry", Value: 128},
	}, st.Axes)
	assert.Equal(t, []string{"a", "r"}, st.Pressed)
	assert.Equal(t, "lx=0   ly=128 rx=255 ry=128 buttons=00100001 [a r]", st.String())

	st, err = frame.Reduced.Decode([]byte{128, 128, 1})
	require.NoError(t, err)
	assert.Equal(t, "x=128 y=128 buttons=00000001 [run]", st.String())

	_, err = frame.Reduced.Decode([]byte{128})
	assert.Error(t, err)
}

func TestValidateRejectsBrokenLayouts(t *testing.T) {
	p := frame.Full
	p.Buttons = append([]frame.ButtonSpec(nil), frame.Full.Buttons...)
	p.Buttons[1].Mask = 1
	assert.ErrorContains(t, p.Validate(), "overlaps")

	q := frame.Reduced
	q.Defaults = binding.Table{}
	assert.ErrorContains(t, q.Validate(), "no key for")

	r := frame.Full
	r.Buttons = []frame.ButtonSpec{{Name: "a", Action: binding.BtnA, Index: 1, Mask: 1}}
	assert.ErrorContains(t, r.Validate(), "byte 0 is never set")
}

func TestLookupProfile(t *testing.T) {
	p, err := frame.LookupProfile("FULL")
	require.NoError(t, err)
	assert.Equal(t, "full", p.Name)
	_, err = frame.LookupProfile("nope")
	assert.Error(t, err)
}
