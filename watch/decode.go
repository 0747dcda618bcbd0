package watch

import (
	"encoding/json"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/otree/store/jsonstore"
)

// Decoder turns file contents into a tree root value.
type Decoder[N any] func(data []byte) (N, error)

// JSON returns a decoder producing raw jsonstore nodes. The document is
// validated but not unpacked.
func JSON() Decoder[jsonstore.Node] {
	return jsonstore.FromBytes
}

// JSONMap returns a decoder unpacking a JSON object into nested maps for
// mapstore-backed trees.
func JSONMap() Decoder[any] {
	return func(data []byte) (any, error) {
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	}
}

// TOML returns a decoder unpacking a TOML document into nested maps for
// mapstore-backed trees.
func TOML() Decoder[any] {
	return func(data []byte) (any, error) {
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	}
}
