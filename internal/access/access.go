// Package access decides what a player may do with a protected block.
package access

import (
	"strings"

	"github.com/udisondev/blocklock/internal/model"
)

// Decision is the outcome of an interaction attempt.
type Decision uint8

const (
	Deny         Decision = iota // 0: interaction cancelled
	Allow                        // 1: interaction proceeds
	NeedPassword                 // 2: cancelled, ask the player to unlock
	Kick                         // 3: cancelled, player is kicked
	Ban                          // 4: cancelled, player is banned
)

func (d Decision) String() string {
	switch d {
	case Deny:
		return "deny"
	case Allow:
		return "allow"
	case NeedPassword:
		return "need_password"
	case Kick:
		return "kick"
	case Ban:
		return "ban"
	}
	return "unknown"
}

// IsOwner reports whether actor owns p. Player names compare case-insensitively.
func IsOwner(p *model.Protection, actor string) bool {
	return actor != "" && strings.EqualFold(p.Owner(), actor)
}

// Decide returns what happens when actor uses the block guarded by p.
// unlocked tells whether actor already entered the password of p in
// this session.
func Decide(p *model.Protection, actor string, unlocked bool) Decision {
	if IsOwner(p, actor) {
		return Allow
	}

	switch p.Kind() {
	case model.KindPublic:
		return Allow
	case model.KindPrivate:
		return Deny
	case model.KindPassword:
		if unlocked {
			return Allow
		}
		return NeedPassword
	case model.KindKickTrap:
		return Kick
	case model.KindBanTrap:
		return Ban
	}
	return Deny
}

// CanAdmin reports whether actor may remove p or change its flags.
// Only the owner may, regardless of kind.
func CanAdmin(p *model.Protection, actor string) bool {
	return IsOwner(p, actor)
}

// RedstoneAllowed reports whether redstone current may operate the block.
func RedstoneAllowed(p *model.Protection) bool {
	return p.HasFlag(model.FlagRedstone)
}
