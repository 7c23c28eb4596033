package cache

import (
	"encoding/json"
	"time"
)

// keyPrefix isolates cache keys from anything else sharing a tier.
const keyPrefix = "naaz-cache-"

// Entry is the envelope written to every tier.
type Entry struct {
	Data       []byte `json:"data"`
	Timestamp  int64  `json:"timestamp"` // unix milliseconds
	TTL        int64  `json:"ttl"`       // milliseconds
	Version    string `json:"version"`
	Compressed bool   `json:"compressed"`
	Encrypted  bool   `json:"encrypted"`
}

// Live reports whether the entry may be served at now by the given application version.
func (e Entry) Live(now time.Time, version string) bool {
	return now.UnixMilli()-e.Timestamp <= e.TTL && e.Version == version
}

func storeKey(key string) string {
	return keyPrefix + key
}

func decodeEntry(raw []byte) (Entry, error) {
	var e Entry
	err := json.Unmarshal(raw, &e)
	return e, err
}
