// Package digest contains the fixed-size hash value produced by the SHA-256
// based hashers of this module (see defaulthasher and hashtree).
package digest
