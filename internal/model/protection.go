package model

import (
	"fmt"
	"strconv"
)

// Kind is the access policy of a protection.
type Kind int32

const (
	KindPrivate  Kind = iota // 0: owner only
	KindPublic               // 1: anyone may use, only owner may remove
	KindPassword             // 2: unlocked with a password
	KindKickTrap             // 3: non-owners are kicked
	KindBanTrap              // 4: non-owners are banned
)

// String returns the human label of the kind.
// Unknown values render as "Unknown(raw:N)".
func (k Kind) String() string {
	switch k {
	case KindPrivate:
		return "Private"
	case KindPublic:
		return "Public"
	case KindPassword:
		return "Password"
	case KindKickTrap:
		return "Kick trap"
	case KindBanTrap:
		return "Ban trap"
	}
	return "Unknown(raw:" + strconv.Itoa(int(k)) + ")"
}

// notCached is shown in place of the material name while the block id is unresolved.
const notCached = "Not yet cached"

// MaterialResolver maps a block id to its display name.
type MaterialResolver interface {
	MaterialName(blockID int32) string
}

// Styler wraps the parts of a protection summary with presentation markup.
// Frame is used for the braces, Detail for the key=value body.
type Styler interface {
	Frame(s string) string
	Detail(s string) string
}

type plainStyle struct{}

func (plainStyle) Frame(s string) string  { return s }
func (plainStyle) Detail(s string) string { return s }

// Protection is an access-control record attached to one block in a world.
//
// Zero value is an empty record; loaders fill it field by field through the
// setters. Not safe for concurrent use.
type Protection struct {
	id      int32
	blockID int32
	data    string // password hash for KindPassword
	date    string
	flags   uint32
	owner   string
	kind    Kind
	world   string
	x, y, z int32
}

// HasFlag reports whether every bit of f is set.
func (p *Protection) HasFlag(f Flag) bool {
	return p.flags&f.Bit() == f.Bit()
}

// AddFlag sets f. Returns false when it was already set, so callers know
// whether the stored row needs a write.
func (p *Protection) AddFlag(f Flag) bool {
	if p.HasFlag(f) {
		return false
	}
	p.flags |= f.Bit()
	return true
}

// RemoveFlag clears f and leaves every other bit untouched.
// No-op unless every bit of f is set.
func (p *Protection) RemoveFlag(f Flag) {
	if !p.HasFlag(f) {
		return
	}
	p.flags &^= f.Bit()
}

// ID returns the database id (0 until stored).
func (p *Protection) ID() int32 { return p.id }

// SetID sets the database id.
func (p *Protection) SetID(id int32) { p.id = id }

// BlockID returns the numeric block type, 0 while unresolved.
func (p *Protection) BlockID() int32 { return p.blockID }

// SetBlockID sets the numeric block type.
func (p *Protection) SetBlockID(b int32) { p.blockID = b }

// Secret returns the stored password material (a hash, never plain text).
func (p *Protection) Secret() string { return p.data }

// SetSecret stores password material as given.
func (p *Protection) SetSecret(s string) { p.data = s }

// Created returns the creation timestamp as stored; its format is opaque.
func (p *Protection) Created() string { return p.date }

// SetCreated sets the creation timestamp.
func (p *Protection) SetCreated(d string) { p.date = d }

// Flags returns the raw bitmask.
func (p *Protection) Flags() uint32 { return p.flags }

// SetFlags replaces the whole bitmask.
func (p *Protection) SetFlags(flags uint32) { p.flags = flags }

// Owner returns the name of the owning player.
func (p *Protection) Owner() string { return p.owner }

// SetOwner sets the owning player.
func (p *Protection) SetOwner(owner string) { p.owner = owner }

// Kind returns the access policy.
func (p *Protection) Kind() Kind { return p.kind }

// SetKind sets the access policy. Unknown values are accepted.
func (p *Protection) SetKind(k Kind) { p.kind = k }

// World returns the world the block is in.
func (p *Protection) World() string { return p.world }

// SetWorld sets the world.
func (p *Protection) SetWorld(w string) { p.world = w }

// X returns the block X coordinate.
func (p *Protection) X() int32 { return p.x }

// SetX sets the block X coordinate.
func (p *Protection) SetX(x int32) { p.x = x }

// Y returns the block Y coordinate.
func (p *Protection) Y() int32 { return p.y }

// SetY sets the block Y coordinate.
func (p *Protection) SetY(y int32) { p.y = y }

// Z returns the block Z coordinate.
func (p *Protection) Z() int32 { return p.z }

// SetZ sets the block Z coordinate.
func (p *Protection) SetZ(z int32) { p.z = z }

// Block returns the protected position.
func (p *Protection) Block() BlockPos {
	return BlockPos{World: p.world, X: p.x, Y: p.y, Z: p.z}
}

// SetBlock moves the protection to pos.
func (p *Protection) SetBlock(pos BlockPos) {
	p.world, p.x, p.y, p.z = pos.World, pos.X, pos.Y, pos.Z
}

// TypeString returns the label of the protection kind.
func (p *Protection) TypeString() string {
	return p.kind.String()
}

// Describe renders a one-line summary:
//
//	Private chest {Id=1 Owner=alice Location=[@world 10,64,-5] Created=... Flags=0}
//
// materials is consulted only when the block id is known (> 0). A nil style
// renders without markup.
func (p *Protection) Describe(style Styler, materials MaterialResolver) string {
	if style == nil {
		style = plainStyle{}
	}
	material := notCached
	if p.blockID > 0 && materials != nil {
		material = materials.MaterialName(p.blockID)
	}

	body := fmt.Sprintf("Id=%d Owner=%s Location=[@%s %d,%d,%d] Created=%s Flags=%d",
		p.id, p.owner, p.world, p.x, p.y, p.z, p.date, p.flags)

	return fmt.Sprintf("%s %s%s%s%s",
		p.TypeString(), material,
		style.Frame(" {"), style.Detail(body), style.Frame("}"))
}

// String implements fmt.Stringer without markup or material lookup.
func (p *Protection) String() string {
	return fmt.Sprintf("%s#%d %s@%s", p.kind, p.id, p.owner, p.Block())
}
