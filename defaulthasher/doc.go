// Package defaulthasher provides domain separated leaf and node functions
// for pmt trees over digest.Digest hashes.
//
// Leaves are hashed as H(0x00 || data) and inner nodes as
// H(0x01 || left || right), following RFC 6962.
package defaulthasher
