package celo

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Minimal ABI codec for the fixed MultiSigWallet/ERC-20 method and event set.
// Everything is 32-byte words; the only dynamic types we deal with are string
// and address[].

const wordSize = 32

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// methodID returns the 4-byte selector for a canonical method signature.
func methodID(signature string) []byte {
	return keccak256([]byte(signature))[:4]
}

// eventTopic returns the topic0 hash for a canonical event signature.
func eventTopic(signature string) string {
	return "0x" + hex.EncodeToString(keccak256([]byte(signature)))
}

// callData assembles selector + argument words into a hex calldata string.
func callData(selector []byte, args ...[]byte) string {
	data := make([]byte, 0, len(selector)+len(args)*wordSize)
	data = append(data, selector...)
	for _, arg := range args {
		data = append(data, arg...)
	}
	return "0x" + hex.EncodeToString(data)
}

func uintWord(v *big.Int) []byte {
	var w [wordSize]byte
	v.FillBytes(w[:])
	return w[:]
}

func uint64Word(v uint64) []byte {
	return uintWord(new(big.Int).SetUint64(v))
}

func addressWord(addr string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(addr), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", addr, err)
	}
	if len(raw) != 20 {
		return nil, fmt.Errorf("invalid address %q: want 20 bytes, got %d", addr, len(raw))
	}

	var w [wordSize]byte
	copy(w[wordSize-20:], raw)
	return w[:], nil
}

// packString encodes the tail of a dynamic string argument: a length word
// followed by the content padded up to a word boundary.
func packString(s string) []byte {
	padded := (len(s) + wordSize - 1) / wordSize * wordSize
	data := make([]byte, wordSize+padded)
	copy(data, uint64Word(uint64(len(s))))
	copy(data[wordSize:], s)
	return data
}

// words is a decoded ABI return payload, addressed word by word.
type words []byte

func parseWords(data string) (words, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(data, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex payload: %w", err)
	}
	if len(raw)%wordSize != 0 {
		return nil, fmt.Errorf("payload length %d is not word aligned", len(raw))
	}

	return raw, nil
}

func (w words) count() int {
	return len(w) / wordSize
}

func (w words) uint(i int) (*big.Int, error) {
	if i < 0 || i >= w.count() {
		return nil, fmt.Errorf("word %d out of range (%d words)", i, w.count())
	}

	return new(big.Int).SetBytes(w[i*wordSize : (i+1)*wordSize]), nil
}

func (w words) bool(i int) (bool, error) {
	v, err := w.uint(i)
	if err != nil {
		return false, err
	}

	return v.Sign() != 0, nil
}

func (w words) address(i int) (string, error) {
	if i < 0 || i >= w.count() {
		return "", fmt.Errorf("word %d out of range (%d words)", i, w.count())
	}

	word := w[i*wordSize : (i+1)*wordSize]
	return "0x" + hex.EncodeToString(word[wordSize-20:]), nil
}

// str decodes a dynamic string whose offset lives in head slot i. The offset
// and length words are range-checked as uint64 before any conversion to int,
// so an adversarial word near 2^64 cannot wrap negative and escape the
// bounds checks.
func (w words) str(i int) (string, error) {
	offset, err := w.uint(i)
	if err != nil {
		return "", err
	}
	if !offset.IsUint64() || offset.Uint64()%wordSize != 0 || offset.Uint64() >= uint64(len(w)) {
		return "", fmt.Errorf("invalid string offset %s", offset)
	}

	at := int(offset.Uint64())
	length := new(big.Int).SetBytes(w[at : at+wordSize])
	if !length.IsUint64() || length.Uint64() > uint64(len(w)-at-wordSize) {
		return "", errors.New("string length points past payload")
	}

	return string(w[at+wordSize : at+wordSize+int(length.Uint64())]), nil
}

// addresses decodes a dynamic address[] whose offset lives in head slot i.
// Same uint64 range discipline as str.
func (w words) addresses(i int) ([]string, error) {
	offset, err := w.uint(i)
	if err != nil {
		return nil, err
	}
	if !offset.IsUint64() || offset.Uint64()%wordSize != 0 || offset.Uint64() >= uint64(len(w)) {
		return nil, fmt.Errorf("invalid array offset %s", offset)
	}

	at := int(offset.Uint64()) / wordSize
	length, err := w.uint(at)
	if err != nil {
		return nil, err
	}
	if !length.IsUint64() || length.Uint64() > uint64(w.count()-at-1) {
		return nil, errors.New("array length points past payload")
	}

	addrs := make([]string, 0, length.Uint64())
	for j := 0; j < int(length.Uint64()); j++ {
		addr, err := w.address(at + 1 + j)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}

	return addrs, nil
}

// topicAddress extracts an address from an indexed event topic.
func topicAddress(topic string) (string, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(topic, "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid topic %q: %w", topic, err)
	}
	if len(raw) != wordSize {
		return "", fmt.Errorf("invalid topic %q: want %d bytes, got %d", topic, wordSize, len(raw))
	}

	return "0x" + hex.EncodeToString(raw[wordSize-20:]), nil
}

// topicUint extracts an unsigned integer from an indexed event topic.
func topicUint(topic string) (uint64, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(topic, "0x"))
	if err != nil {
		return 0, fmt.Errorf("invalid topic %q: %w", topic, err)
	}
	if len(raw) != wordSize {
		return 0, fmt.Errorf("invalid topic %q: want %d bytes, got %d", topic, wordSize, len(raw))
	}

	v := new(big.Int).SetBytes(raw)
	if !v.IsUint64() {
		return 0, fmt.Errorf("topic value %s overflows uint64", v)
	}

	return v.Uint64(), nil
}
