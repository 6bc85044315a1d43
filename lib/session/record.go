package session

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/ZygmaCore/orbit/lib/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// record is the persisted shape of a play session. ExpiresAt is epoch
// milliseconds so the value survives clients with differing locales.
type record struct {
	PlayToken string `json:"playToken"`
	ExpiresAt int64  `json:"expiresAt"`
}

func encodeRecord(r record) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeRecord(key, value string) (record, error) {
	var r record
	if err := json.Unmarshal([]byte(value), &r); err != nil {
		return record{}, &store.DecodeError{Key: key, Err: err}
	}
	return r, nil
}
