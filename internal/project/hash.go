package project

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
)

// Digest is a sha256 cache key.
type Digest [32]byte

// fingerprint lists the options that change compiled output.
func (c *Config) fingerprint() []string {
	cc := c.Compiler
	parts := []string{
		cc.Runtime,
		cc.InteropRuntime,
		strconv.FormatBool(cc.Interop),
		strconv.FormatBool(cc.Abbreviate),
		strconv.FormatBool(cc.SSR),
	}
	return append(parts, cc.CustomElements...)
}

// CacheKey identifies the output of content compiled under c by the given
// compiler version. Every part is length-prefixed, so shifting bytes between
// neighbours changes the key.
func (c *Config) CacheKey(content []byte, toolVersion string) Digest {
	h := sha256.New()
	var buf []byte
	write := func(b []byte) {
		buf = binary.AppendUvarint(buf[:0], uint64(len(b)))
		_, _ = h.Write(buf)
		_, _ = h.Write(b)
	}
	write(content)
	write([]byte(toolVersion))
	for _, p := range c.fingerprint() {
		write([]byte(p))
	}
	var out Digest
	h.Sum(out[:0])
	return out
}
