package gormrepo

import (
	"encoding/json"

	"newworld/internal/domain/world"
)

func encodeChunkTiles(tiles []world.Tile) ([]byte, error) {
	return json.Marshal(tiles)
}

func decodeChunkTiles(data []byte) ([]world.Tile, error) {
	out := []world.Tile{}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
