package model

import "fmt"

// BlockPos identifies a block: integer coordinates inside a named world.
// Value type, compared with ==.
type BlockPos struct {
	World string
	X     int32
	Y     int32
	Z     int32
}

// NewBlockPos creates a BlockPos.
func NewBlockPos(world string, x, y, z int32) BlockPos {
	return BlockPos{World: world, X: x, Y: y, Z: z}
}

// String formats as "world 10,64,-5".
func (b BlockPos) String() string {
	return fmt.Sprintf("%s %d,%d,%d", b.World, b.X, b.Y, b.Z)
}
