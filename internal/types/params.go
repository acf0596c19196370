package types

import (
	"fmt"

	"fortio.org/safecast"
)

// ParamInfo stores the declared name of an unbound type variable.
type ParamInfo struct {
	Name string
}

// RegisterParam allocates a fresh type variable. Type variables are never
// deduplicated: two parameters named T in different signatures are distinct.
func (in *Interner) RegisterParam(name string) TypeID {
	slot := in.appendParamInfo(ParamInfo{Name: name})
	return in.internRaw(Type{Kind: KindParam, Payload: slot})
}

// ParamInfo returns metadata for the provided type variable.
func (in *Interner) ParamInfo(id TypeID) (*ParamInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindParam {
		return nil, false
	}
	if int(tt.Payload) >= len(in.params) {
		return nil, false
	}
	return &in.params[tt.Payload], true
}

func (in *Interner) appendParamInfo(info ParamInfo) uint32 {
	in.params = append(in.params, info)
	slot, err := safecast.Conv[uint32](len(in.params) - 1)
	if err != nil {
		panic(fmt.Errorf("param info overflow: %w", err))
	}
	return slot
}
