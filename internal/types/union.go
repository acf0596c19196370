package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// UnionInfo stores metadata for a nominal tagged union instantiation.
// The Option and Result container shapes are unions named "Option" and
// "Result" with one and two type arguments.
type UnionInfo struct {
	Name     string
	TypeArgs []TypeID
}

// RegisterUnion creates or finds a union instantiation with concrete type
// arguments.
func (in *Interner) RegisterUnion(name string, args []TypeID) TypeID {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		tt := in.types[id]
		if tt.Kind != KindUnion {
			continue
		}
		if int(tt.Payload) >= len(in.unions) {
			continue
		}
		info := in.unions[tt.Payload]
		if info.Name == name && slices.Equal(info.TypeArgs, args) {
			return id
		}
	}
	slot := in.appendUnionInfo(UnionInfo{Name: name, TypeArgs: cloneTypeArgs(args)})
	return in.internRaw(Type{Kind: KindUnion, Payload: slot})
}

// UnionInfo returns metadata for the provided union TypeID.
func (in *Interner) UnionInfo(id TypeID) (*UnionInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindUnion {
		return nil, false
	}
	if int(tt.Payload) >= len(in.unions) {
		return nil, false
	}
	return &in.unions[tt.Payload], true
}

func (in *Interner) appendUnionInfo(info UnionInfo) uint32 {
	in.unions = append(in.unions, info)
	slot, err := safecast.Conv[uint32](len(in.unions) - 1)
	if err != nil {
		panic(fmt.Errorf("union info overflow: %w", err))
	}
	return slot
}
