package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// FnInfo stores metadata for function types.
type FnInfo struct {
	Params     []TypeID // Parameter types (in order)
	Result     TypeID   // Return type
	TypeParams []TypeID // Unbound type variables; empty for concrete signatures
}

// IsGeneric reports whether the signature still carries unbound type
// variables. Such signatures cannot be classified by return type.
func (info *FnInfo) IsGeneric() bool {
	return info != nil && len(info.TypeParams) > 0
}

// RegisterFn creates or finds a function type.
func (in *Interner) RegisterFn(params []TypeID, result TypeID) TypeID {
	return in.RegisterGenericFn(params, result, nil)
}

// RegisterGenericFn creates or finds a function type with unbound type
// variables.
func (in *Interner) RegisterGenericFn(params []TypeID, result TypeID, typeParams []TypeID) TypeID {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		tt := in.types[id]
		if tt.Kind != KindFn {
			continue
		}
		if int(tt.Payload) >= len(in.fns) {
			continue
		}
		info := in.fns[tt.Payload]
		if info.Result == result &&
			slices.Equal(info.Params, params) &&
			slices.Equal(info.TypeParams, typeParams) {
			return id
		}
	}
	slot := in.appendFnInfo(FnInfo{
		Params:     cloneTypeArgs(params),
		Result:     result,
		TypeParams: cloneTypeArgs(typeParams),
	})
	return in.internRaw(Type{Kind: KindFn, Payload: slot})
}

// FnInfo retrieves function type metadata by TypeID.
func (in *Interner) FnInfo(id TypeID) (*FnInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindFn {
		return nil, false
	}
	if int(tt.Payload) >= len(in.fns) {
		return nil, false
	}
	return &in.fns[tt.Payload], true
}

func (in *Interner) appendFnInfo(info FnInfo) uint32 {
	in.fns = append(in.fns, info)
	slot, err := safecast.Conv[uint32](len(in.fns) - 1)
	if err != nil {
		panic(fmt.Errorf("fn info overflow: %w", err))
	}
	return slot
}
