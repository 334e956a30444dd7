// Package pb contains the protobuf wire encoding of inclusion proofs over
// digest.Digest hashes. See proof.proto for the message definition.
package pb
