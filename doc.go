/*
Package pmt implements a perfect binary Merkle tree over exactly 2^height
values together with inclusion proofs for single leaves.

The tree is generic over the input value type V and the hash type H. Callers
inject how a value becomes a leaf hash (LeafFunc) and how two sibling hashes
become their parent (NodeFunc); the packages defaulthasher and hashtree
provide SHA-256 based functions over digest.Digest.

All nodes are numbered in a single flat id space: leaves take the ids
[0, 2^height) in input order, each level above follows, and the root has the
last id, 2^(height+1) - 2. A proof carries the sibling hash of every node on
the leaf's path to the root, leaf level first. When folding a proof, the
running hash is the left operand whenever the node at that level has an even
id.
*/
package pmt
