package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/blocklock/internal/model"
)

var (
	_ model.Styler = Plain{}
	_ model.Styler = Chat{}
	_ model.Styler = Terminal{}
)

func TestChat(t *testing.T) {
	assert.Equal(t, "§f {", Chat{}.Frame(" {"))
	assert.Equal(t, "§aId=1", Chat{}.Detail("Id=1"))
}

func TestChat_Describe(t *testing.T) {
	var p model.Protection
	p.SetID(3)
	p.SetOwner("bob")
	p.SetBlock(model.NewBlockPos("world", 1, 2, 3))

	styled := p.Describe(Chat{}, nil)
	plain := p.Describe(Plain{}, nil)

	assert.NotEqual(t, plain, styled)
	assert.Equal(t, plain, StripChat(styled))
}

func TestTerminal_KeepsText(t *testing.T) {
	term := NewTerminal()
	assert.Contains(t, term.Frame("}"), "}")
	assert.Contains(t, term.Detail("Id=1"), "Id=1")
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    model.Styler
		wantErr bool
	}{
		{"", Plain{}, false},
		{"plain", Plain{}, false},
		{"CHAT", Chat{}, false},
		{"terminal", NewTerminal(), false},
		{"html", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByName(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestStripChat(t *testing.T) {
	assert.Equal(t, "a {b}", StripChat("a§f {§ab§f}"))
	assert.Equal(t, "", StripChat("§"))
	assert.Equal(t, "plain", StripChat("plain"))
}
