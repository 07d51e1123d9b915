// Package rpc defines the wire messages of the Munim Connect API.
//
// Messages are plain Go structs carried over the Connect protocol with
// a JSON codec (see Codec). Monetary amounts travel as decimal strings
// and dates as "YYYY-MM-DD".
package rpc

import "encoding/json"

// DateLayout is the wire format for entry and report dates.
const DateLayout = "2006-01-02"

// Codec is a connect.Codec that carries the plain structs in this
// package as JSON. It registers under the name "json", replacing the
// default protobuf-JSON codec, so browser clients can speak plain
// application/json to the API.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

// Unmarshal implements connect.Codec.
func (Codec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, message)
}
