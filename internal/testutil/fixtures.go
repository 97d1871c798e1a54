package testutil

import (
	"github.com/udisondev/blocklock/internal/model"
)

// NewProtection builds an unsaved protection at world/x/y/z owned by owner.
func NewProtection(kind model.Kind, owner string, pos model.BlockPos) *model.Protection {
	p := &model.Protection{}
	p.SetKind(kind)
	p.SetOwner(owner)
	p.SetBlock(pos)
	return p
}

// SpawnChest is the protection most tests start from: a private chest of
// alice at world 10,64,-5.
func SpawnChest() *model.Protection {
	p := NewProtection(model.KindPrivate, "alice", model.NewBlockPos("world", 10, 64, -5))
	p.SetBlockID(54)
	return p
}
