package model

import "strings"

// Flag is a single toggle stored as one bit of Protection.Flags.
// A set bit is persisted; a clear bit is the default state.
type Flag uint32

const (
	// FlagRedstone lets redstone current operate the protected block
	// (e.g. a pressure plate opening a door).
	FlagRedstone Flag = 1 << 0 // 0x01
)

type flagInfo struct {
	flag        Flag
	name        string
	description string
}

// flagTable lists every known flag in declaration order.
// Append new flags with the next free bit; never renumber existing ones.
var flagTable = []flagInfo{
	{FlagRedstone, "REDSTONE", `If set to "on", redstone will be able to interact with the protection (ex. open a door)`},
}

// Bit returns the mask of the flag.
func (f Flag) Bit() uint32 {
	return uint32(f)
}

// String returns the flag name, or "" for an unknown bit.
func (f Flag) String() string {
	if fi, ok := lookupFlag(f); ok {
		return fi.name
	}
	return ""
}

// Description returns the help text of the flag, or "" for an unknown bit.
func (f Flag) Description() string {
	if fi, ok := lookupFlag(f); ok {
		return fi.description
	}
	return ""
}

func lookupFlag(f Flag) (flagInfo, bool) {
	for _, fi := range flagTable {
		if fi.flag == f {
			return fi, true
		}
	}
	return flagInfo{}, false
}

// AllFlags returns every known flag in declaration order.
func AllFlags() []Flag {
	flags := make([]Flag, len(flagTable))
	for i, fi := range flagTable {
		flags[i] = fi.flag
	}
	return flags
}

// FlagByName finds a flag by case-insensitive name.
func FlagByName(name string) (Flag, bool) {
	for _, fi := range flagTable {
		if strings.EqualFold(fi.name, name) {
			return fi.flag, true
		}
	}
	return 0, false
}

// FlagNames lists the names of the known flags set in mask.
func FlagNames(mask uint32) []string {
	var names []string
	for _, fi := range flagTable {
		if mask&fi.flag.Bit() == fi.flag.Bit() {
			names = append(names, fi.name)
		}
	}
	return names
}
