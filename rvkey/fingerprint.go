package rvkey

import (
	"crypto/sha256"
	"strings"
)

// Fingerprint rendering for notices and logs. Uses bech32-style encoding
// (BIP-173 character set and checksum) over the first 16 bytes of the
// SHA-256 of the DER encoding, prefixed with "rv".

const fpPrefix = "rv"

// fpCharset excludes 1, b, i, o to avoid confusion.
const fpCharset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Fingerprint returns a short, human-comparable identifier for the key.
// The hash covers the DER encoding, so cosmetic differences in PEM framing
// do not change the fingerprint. Returns an empty string if the key cannot
// be encoded.
func (p *PublicKey) Fingerprint() string {
	der, err := p.marshalDER()
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(der)
	return encodeBech32(fpPrefix, sum[:16])
}

func fpPolymod(values []int) int {
	gen := []int{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := 1
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ v
		for i := 0; i < 5; i++ {
			if (top>>i)&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

func encodeBech32(hrp string, data []byte) string {
	// Convert 8-bit bytes to 5-bit groups, padding the tail.
	var conv []int
	acc, bits := 0, 0
	for _, b := range data {
		acc = acc<<8 | int(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			conv = append(conv, (acc>>bits)&31)
		}
	}
	if bits > 0 {
		conv = append(conv, (acc<<(5-bits))&31)
	}

	// Checksum over the expanded HRP and data.
	values := make([]int, 0, len(hrp)*2+1+len(conv)+6)
	for _, c := range hrp {
		values = append(values, int(c>>5))
	}
	values = append(values, 0)
	for _, c := range hrp {
		values = append(values, int(c&31))
	}
	values = append(values, conv...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	polymod := fpPolymod(values) ^ 1
	for i := 0; i < 6; i++ {
		conv = append(conv, (polymod>>(5*(5-i)))&31)
	}

	var out strings.Builder
	out.WriteString(hrp)
	out.WriteByte('1')
	for _, d := range conv {
		out.WriteByte(fpCharset[d])
	}
	return out.String()
}
