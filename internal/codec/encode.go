package codec

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"formtree/internal/form"
	"formtree/pathtree"
)

// encMode is the CBOR encoder configured with Core Deterministic Encoding
// (RFC 8949 §4.2): sorted map keys, shortest encodings, no indefinite-length
// items.
var encMode cbor.EncMode

// decMode decodes nested maps as map[string]any so decoded trees compare
// equal to Node.ToMap.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Encode writes n to w in the given format.
func Encode(w io.Writer, n pathtree.Node, f Format) error {
	m := n.ToMap()

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(m)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		return enc.Close()

	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(m); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}

		return nil

	case FormatEntries:
		return encodeEntries(w, n.Entries())

	case FormatCBOR:
		data, err := MarshalCBOR(n)
		if err != nil {
			return err
		}

		_, err = w.Write(data)

		return err

	default:
		return fmt.Errorf("unknown format %q", string(f))
	}
}

// encodeEntries writes entries as a YAML entry file with list paths, so
// segments containing dots survive.
func encodeEntries(w io.Writer, entries []pathtree.Entry) error {
	docs := make([]entryDoc, len(entries))
	for i, e := range entries {
		docs[i] = entryDoc{Path: form.SegmentPath(e.Path...), Value: form.NewValue(e.Value)}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}

	return enc.Close()
}

// MarshalCBOR encodes n with Core Deterministic Encoding.
func MarshalCBOR(n pathtree.Node) ([]byte, error) {
	data, err := encMode.Marshal(n.ToMap())
	if err != nil {
		return nil, fmt.Errorf("encoding cbor: %w", err)
	}

	return data, nil
}

// UnmarshalCBOR decodes a tree written by MarshalCBOR into plain Go values.
func UnmarshalCBOR(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := decMode.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding cbor: %w", err)
	}

	return m, nil
}

// Digest returns the hex BLAKE3-256 of the deterministic CBOR form of n.
func Digest(n pathtree.Node) (string, error) {
	data, err := MarshalCBOR(n)
	if err != nil {
		return "", err
	}

	sum := blake3.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}
