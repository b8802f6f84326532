// Package snapshot encodes and decodes a resolved scope.Graph so
// downstream tooling (or a later "vesperc inspect" run) can load it
// without re-running the builder and resolver. It is an addition this
// module makes on top of the original design: nothing in the core itself
// depends on a snapshot ever existing.
package snapshot

import (
	"github.com/vmihailenco/msgpack/v5"

	"vesper/internal/scope"
)

// Encode serializes every scope in g to a portable byte slice.
func Encode(g *scope.Graph) ([]byte, error) {
	return msgpack.Marshal(g.AllScopes())
}

// Decode rebuilds a Graph from bytes produced by Encode.
func Decode(data []byte) (*scope.Graph, error) {
	var scopes []*scope.Scope
	if err := msgpack.Unmarshal(data, &scopes); err != nil {
		return nil, err
	}
	return scope.FromScopes(scopes), nil
}
