package pb

import (
	"github.com/gogo/protobuf/proto"
)

// Proof mirrors the Proof message of proof.proto. Marshaling goes through
// the reflection based table codec of gogo/protobuf, driven by the struct tags.
type Proof struct {
	LeafIndex        uint64   `protobuf:"varint,1,opt,name=leaf_index,json=leafIndex,proto3" json:"leaf_index,omitempty"`
	TargetHash       []byte   `protobuf:"bytes,2,opt,name=target_hash,json=targetHash,proto3" json:"target_hash,omitempty"`
	Neighbors        [][]byte `protobuf:"bytes,3,rep,name=neighbors,proto3" json:"neighbors,omitempty"`
	XXX_unrecognized []byte   `json:"-"`
	XXX_sizecache    int32    `json:"-"`
}

func (m *Proof) Reset()         { *m = Proof{} }
func (m *Proof) String() string { return proto.CompactTextString(m) }
func (*Proof) ProtoMessage()    {}

func (m *Proof) GetLeafIndex() uint64 {
	if m != nil {
		return m.LeafIndex
	}
	return 0
}

func (m *Proof) GetTargetHash() []byte {
	if m != nil {
		return m.TargetHash
	}
	return nil
}

func (m *Proof) GetNeighbors() [][]byte {
	if m != nil {
		return m.Neighbors
	}
	return nil
}

func init() {
	proto.RegisterType((*Proof)(nil), "pmt.pb.Proof")
}
