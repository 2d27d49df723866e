package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data. Scenes are identified by it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns "<namespace>:<sha256>" over the JSON form of parts, so
// that any change to a part yields a different key.
func hashKey(namespace string, parts ...any) string {
	data, err := json.Marshal(parts)
	if err != nil {
		// parts are plain strings and option structs.
		panic("cache: unencodable key part: " + err.Error())
	}
	return namespace + ":" + Hash(data)
}
