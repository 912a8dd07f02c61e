// Package kat loads and runs known answer tests for the keccak package.
//
// Vectors are kept in YAML:
//
//	- name: sha3-256/1630
//	  variant: sha3-256
//	  hex: a3
//	  repeat: 204
//	  bits: 1630
//	  digest: 52860aa3...
//
// A message is given by exactly one of hex, binary (first character is bit
// 0) or text. Repeat concatenates the pattern, bits keeps only a prefix of
// the result and output overrides the variant's default output length.
package kat

import (
	"bytes"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	keccak "github.com/Giulio2002/keccakp"
	"github.com/Giulio2002/keccakp/bitvec"
	"github.com/hashicorp/go-multierror"
	logging "github.com/ipfs/go-log/v2"
	"gopkg.in/yaml.v3"
)

var log = logging.Logger("kat")

var (
	ErrInvalidVector = errors.New("kat: invalid vector")
	ErrMismatch      = errors.New("kat: digest mismatch")
)

//go:embed vectors.yaml
var defaultVectors []byte

// Vector is one known answer test.
type Vector struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
	Hex     string `yaml:"hex,omitempty"`
	Binary  string `yaml:"binary,omitempty"`
	Text    string `yaml:"text,omitempty"`
	Repeat  int    `yaml:"repeat,omitempty"`
	Bits    *int   `yaml:"bits,omitempty"`
	Output  int    `yaml:"output,omitempty"`
	Digest  string `yaml:"digest"`
}

// Load decodes a YAML list of vectors.
func Load(r io.Reader) ([]Vector, error) {
	var vs []Vector
	if err := yaml.NewDecoder(r).Decode(&vs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidVector, err)
	}
	return vs, nil
}

// Default returns the embedded FIPS 202 vectors plus a few SHAKE and
// legacy Keccak ones.
func Default() []Vector {
	vs, err := Load(bytes.NewReader(defaultVectors))
	if err != nil {
		panic(err)
	}
	return vs
}

// Message returns the input bytes and bit length described by v.
func (v Vector) Message() ([]byte, int, error) {
	var set int
	for _, s := range []string{v.Hex, v.Binary, v.Text} {
		if s != "" {
			set++
		}
	}
	if set > 1 {
		return nil, 0, fmt.Errorf("%w: %s: more than one of hex, binary and text", ErrInvalidVector, v.Name)
	}
	repeat := max(v.Repeat, 1)

	var msg *bitvec.Vector
	switch {
	case v.Binary != "":
		pattern, err := bitvec.Parse(v.Binary)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %s: %v", ErrInvalidVector, v.Name, err)
		}
		msg = bitvec.Zeroes(0)
		for range repeat {
			msg.Append(pattern)
		}
	case v.Text != "":
		msg, _ = bitvec.FromBytes([]byte(strings.Repeat(v.Text, repeat)), -1)
	default:
		pattern, err := hex.DecodeString(strings.Join(strings.Fields(v.Hex), ""))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %s: %v", ErrInvalidVector, v.Name, err)
		}
		msg, _ = bitvec.FromBytes(bytes.Repeat(pattern, repeat), -1)
	}

	bits := msg.Len()
	if v.Bits != nil {
		if *v.Bits < 0 || *v.Bits > bits {
			return nil, 0, fmt.Errorf("%w: %s: %d bits from a %d bit message", ErrInvalidVector, v.Name, *v.Bits, bits)
		}
		bits = *v.Bits
	}
	return msg.Truncate(bits).Bytes(), bits, nil
}

// Check computes the digest of v and compares it with the expected one.
func (v Vector) Check() error {
	variant, err := keccak.ParseVariant(v.Variant)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidVector, v.Name, err)
	}
	want, err := hex.DecodeString(v.Digest)
	if err != nil {
		return fmt.Errorf("%w: %s: digest: %v", ErrInvalidVector, v.Name, err)
	}
	data, bits, err := v.Message()
	if err != nil {
		return err
	}
	output := v.Output
	if output <= 0 {
		output = variant.OutputBits()
	}
	p, err := variant.New()
	if err != nil {
		return err
	}
	got, err := p.ProcessBits(data, bits, output)
	if err != nil {
		return fmt.Errorf("%s: %w", v.Name, err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%w: %s: got %x, want %x", ErrMismatch, v.Name, got, want)
	}
	return nil
}

// Run checks every vector and returns all failures together.
func Run(vs []Vector) error {
	var result *multierror.Error
	for _, v := range vs {
		if err := v.Check(); err != nil {
			log.Warnw("known answer test failed", "name", v.Name, "err", err)
			result = multierror.Append(result, err)
		}
	}
	failed := 0
	if result != nil {
		failed = len(result.Errors)
	}
	log.Infow("known answer tests done", "total", len(vs), "failed", failed)
	return result.ErrorOrNil()
}
