package phh

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lox/showdown/internal/fileutil"
)

// ErrNilHistory is returned when asked to encode a nil hand history.
var ErrNilHistory = errors.New("phh: hand history is nil")

// Encode writes the hand history to w as PHH TOML.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return ErrNilHistory
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the hand to dir as <hand>.phh and returns the path. The
// file is replaced atomically so concurrent readers see whole hands only.
func WriteFile(dir string, hand *HandHistory) (string, error) {
	if hand == nil {
		return "", ErrNilHistory
	}
	if hand.Hand == "" {
		return "", errors.New("phh: hand history has no id")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("phh: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, hand.Hand+".phh")
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Encode(w, hand)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}
