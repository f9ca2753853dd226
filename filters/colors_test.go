package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediafx/models"
)

func TestColorList_Default(t *testing.T) {
	cl := NewColorList()

	assert.Equal(t, []string{DefaultColor}, cl.Colors())
	assert.Equal(t, DefaultColor, cl.String())
}

func TestColorList_Set(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		wantErr    bool
	}{
		{"Single valid", []string{"#FFFFFF"}, false},
		{"Multiple valid", []string{"#FF0000", "#00FF00", "#0000ff"}, false},
		{"Mixed case valid", []string{"#aAbBcC"}, false},
		{"Missing hash", []string{"FFFFFF"}, true},
		{"Too short", []string{"#FFF"}, true},
		{"Too long", []string{"#FFFFFFF"}, true},
		{"Non-hex digit", []string{"#GGGGGG"}, true},
		{"Valid then invalid rejects all", []string{"#FFFFFF", "bad"}, true},
		{"Invalid then valid rejects all", []string{"bad", "#FFFFFF"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := NewColorList()
			err := cl.Set(tt.candidates)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, models.IsInvalidConfiguration(err))
				assert.Equal(t, []string{DefaultColor}, cl.Colors(), "list unchanged after rejected set")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.candidates, cl.Colors())
		})
	}
}

func TestColorList_SetEmptyIsNoOp(t *testing.T) {
	cl := NewColorList()
	require.NoError(t, cl.Set([]string{"#FF0000"}))

	require.NoError(t, cl.Set(nil))
	require.NoError(t, cl.Set([]string{}))
	assert.Equal(t, []string{"#FF0000"}, cl.Colors(), "empty set keeps prior colors")
}

func TestColorList_NeverEmpty(t *testing.T) {
	cl := NewColorList()
	assert.NotEmpty(t, cl.Colors())

	_ = cl.Set([]string{"oops"})
	assert.NotEmpty(t, cl.Colors())
}

func TestColorList_String_PipeJoined(t *testing.T) {
	cl := NewColorList()
	require.NoError(t, cl.Set([]string{"#FF0000", "#00FF00"}))

	assert.Equal(t, "#FF0000|#00FF00", cl.String())
}

func TestColorList_ColorsIsACopy(t *testing.T) {
	cl := NewColorList()
	require.NoError(t, cl.Set([]string{"#FF0000"}))

	got := cl.Colors()
	got[0] = "#123456"
	assert.Equal(t, []string{"#FF0000"}, cl.Colors(), "mutating the returned slice must not affect the list")
}

func TestColorList_GetterIdempotent(t *testing.T) {
	cl := NewColorList()
	require.NoError(t, cl.Set([]string{"#FF0000", "#00FF00"}))

	assert.Equal(t, cl.Colors(), cl.Colors())
}
