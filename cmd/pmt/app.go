package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"math/bits"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/celestiaorg/pmt"
	"github.com/celestiaorg/pmt/defaulthasher"
	"github.com/celestiaorg/pmt/digest"
	"github.com/celestiaorg/pmt/hashtree"
	"github.com/celestiaorg/pmt/internal/logger"
	"github.com/celestiaorg/pmt/pb"
)

var (
	errUnknownHasher   = errors.New("unknown hasher")
	errNotPowerOfTwo   = errors.New("number of input values is not a power of two")
	errProofRejected   = errors.New("proof does not verify against root")
	errValueNotInProof = errors.New("value does not hash to the proof's target")
)

const (
	hasherDefault  = "default"
	hasherHashtree = "hashtree"
)

// scheme bundles the functions a tree over strings is built and checked with.
type scheme struct {
	leaf pmt.LeafFunc[string, digest.Digest]
	node pmt.NodeFunc[digest.Digest]
	opts []pmt.Option[digest.Digest]
}

func schemeByName(name string) (scheme, error) {
	switch name {
	case hasherDefault:
		return scheme{
			leaf: defaulthasher.SHA256.HashString,
			node: defaulthasher.HashNode,
		}, nil
	case hasherHashtree:
		return scheme{
			leaf: func(s string) digest.Digest { return hashtree.HashLeaf([]byte(s)) },
			node: hashtree.HashNode,
			opts: []pmt.Option[digest.Digest]{pmt.LevelHasher(hashtree.HashLevel)},
		}, nil
	default:
		return scheme{}, fmt.Errorf("%w: %q, want %q or %q", errUnknownHasher, name, hasherDefault, hasherHashtree)
	}
}

func newApp() *cli.App {
	inputFlag := &cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "file with one leaf value per line; the line count must be a power of two",
		EnvVars:  []string{"PMT_INPUT"},
		Required: true,
	}
	return &cli.App{
		Name:  "pmt",
		Usage: "Build perfect binary Merkle trees and inclusion proofs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "hasher",
				Usage:   fmt.Sprintf("hash scheme: %q (domain separated SHA-256) or %q (plain SHA-256)", hasherDefault, hasherHashtree),
				EnvVars: []string{"PMT_HASHER"},
				Value:   hasherDefault,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{"PMT_VERBOSE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "root",
				Usage:  "print the root hash of the tree over the input values",
				Flags:  []cli.Flag{inputFlag},
				Action: rootAction,
			},
			{
				Name:  "prove",
				Usage: "print the root hash and a hex encoded inclusion proof for one leaf",
				Flags: []cli.Flag{
					inputFlag,
					&cli.IntFlag{
						Name:     "leaf",
						Aliases:  []string{"l"},
						Usage:    "index of the leaf to prove",
						EnvVars:  []string{"PMT_LEAF"},
						Required: true,
					},
				},
				Action: proveAction,
			},
			{
				Name:  "verify",
				Usage: "check a hex encoded inclusion proof of a value against a root hash",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "proof", Usage: "hex encoded proof", EnvVars: []string{"PMT_PROOF"}, Required: true},
					&cli.StringFlag{Name: "root", Usage: "hex encoded root hash", EnvVars: []string{"PMT_ROOT"}, Required: true},
					&cli.StringFlag{Name: "value", Usage: "the proven leaf value", EnvVars: []string{"PMT_VALUE"}, Required: true},
				},
				Action: verifyAction,
			},
		},
	}
}

func newCommandLogger(c *cli.Context) (*zap.Logger, error) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return l, nil
}

// buildTree reads the input file and builds the tree with the selected scheme.
func buildTree(c *cli.Context, l *zap.Logger) (*pmt.Tree[string, digest.Digest], scheme, error) {
	s, err := schemeByName(c.String("hasher"))
	if err != nil {
		return nil, scheme{}, err
	}
	values, err := readLines(c.String("input"))
	if err != nil {
		return nil, scheme{}, err
	}
	n := uint(len(values))
	if bits.OnesCount(n) != 1 {
		return nil, scheme{}, fmt.Errorf("%w: got %d", errNotPowerOfTwo, n)
	}
	height := bits.TrailingZeros(n)

	l.Sugar().Debugw("Building tree",
		"input", c.String("input"),
		"hasher", c.String("hasher"),
		"leaves", n,
		"height", height)

	tree, err := pmt.New(height, values, s.leaf, s.node, s.opts...)
	if err != nil {
		return nil, scheme{}, err
	}
	l.Sugar().Infow("Tree built", "leaves", tree.NumLeaves(), "nodes", tree.NumNodes(), "root", tree.Root().String())
	return tree, s, nil
}

func rootAction(c *cli.Context) error {
	l, err := newCommandLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	tree, _, err := buildTree(c, l)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, tree.Root().String())
	return err
}

func proveAction(c *cli.Context) error {
	l, err := newCommandLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	tree, _, err := buildTree(c, l)
	if err != nil {
		return err
	}
	proof, err := tree.Prove(c.Int("leaf"))
	if err != nil {
		return err
	}
	raw, err := pb.MarshalProof(proof)
	if err != nil {
		return fmt.Errorf("failed to encode proof: %w", err)
	}
	l.Sugar().Debugw("Proof created", "leaf", proof.LeafIndex(), "target", proof.TargetHash().String(), "neighbors", proof.Height())

	_, err = fmt.Fprintf(c.App.Writer, "root: %s\nproof: %s\n", tree.Root(), hex.EncodeToString(raw))
	return err
}

func verifyAction(c *cli.Context) error {
	l, err := newCommandLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	s, err := schemeByName(c.String("hasher"))
	if err != nil {
		return err
	}
	raw, err := hex.DecodeString(c.String("proof"))
	if err != nil {
		return fmt.Errorf("invalid proof encoding: %w", err)
	}
	proof, err := pb.UnmarshalProof(raw)
	if err != nil {
		return fmt.Errorf("invalid proof: %w", err)
	}
	root, err := digest.FromHex(c.String("root"))
	if err != nil {
		return fmt.Errorf("invalid root: %w", err)
	}

	if !digest.Equal(s.leaf(c.String("value")), proof.TargetHash()) {
		return errValueNotInProof
	}
	if !proof.VerifyInclusion(s.node, root, digest.Equal) {
		l.Sugar().Debugw("Proof rejected", "leaf", proof.LeafIndex(), "computed_root", proof.ComputeRoot(s.node).String(), "root", root.String())
		return errProofRejected
	}
	l.Sugar().Infow("Proof verified", "leaf", proof.LeafIndex(), "root", root.String())
	_, err = fmt.Fprintln(c.App.Writer, "OK")
	return err
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}
