package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/blocklock/internal/model"
)

func newProtection(kind model.Kind, owner string) *model.Protection {
	var p model.Protection
	p.SetKind(kind)
	p.SetOwner(owner)
	return &p
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		kind     model.Kind
		actor    string
		unlocked bool
		want     Decision
	}{
		{"owner private", model.KindPrivate, "alice", false, Allow},
		{"owner case-insensitive", model.KindPrivate, "ALICE", false, Allow},
		{"owner of trap", model.KindBanTrap, "alice", false, Allow},
		{"stranger private", model.KindPrivate, "bob", false, Deny},
		{"stranger public", model.KindPublic, "bob", false, Allow},
		{"stranger password locked", model.KindPassword, "bob", false, NeedPassword},
		{"stranger password unlocked", model.KindPassword, "bob", true, Allow},
		{"stranger kick trap", model.KindKickTrap, "bob", false, Kick},
		{"stranger ban trap", model.KindBanTrap, "bob", true, Ban},
		{"stranger unknown kind", model.Kind(42), "bob", true, Deny},
		{"empty actor", model.KindPrivate, "", false, Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProtection(tt.kind, "alice")
			assert.Equal(t, tt.want, Decide(p, tt.actor, tt.unlocked))
		})
	}
}

func TestDecide_EmptyOwner(t *testing.T) {
	p := newProtection(model.KindPrivate, "")
	assert.Equal(t, Deny, Decide(p, "", false))
}

func TestCanAdmin(t *testing.T) {
	p := newProtection(model.KindPublic, "alice")

	assert.True(t, CanAdmin(p, "alice"))
	assert.False(t, CanAdmin(p, "bob"), "public protections are still owner-administered")
}

func TestRedstoneAllowed(t *testing.T) {
	p := newProtection(model.KindPrivate, "alice")
	assert.False(t, RedstoneAllowed(p))

	p.AddFlag(model.FlagRedstone)
	assert.True(t, RedstoneAllowed(p))

	p.RemoveFlag(model.FlagRedstone)
	assert.False(t, RedstoneAllowed(p))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "need_password", NeedPassword.String())
	assert.Equal(t, "unknown", Decision(99).String())
}
