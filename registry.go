package serde

import (
	"fmt"

	"github.com/zoobzio/serde/bson"
	"github.com/zoobzio/serde/cbor"
	"github.com/zoobzio/serde/flexbuffers"
	"github.com/zoobzio/serde/json"
	"github.com/zoobzio/serde/json5"
	"github.com/zoobzio/serde/lexpr"
	"github.com/zoobzio/serde/msgpack"
	"github.com/zoobzio/serde/pickle"
	"github.com/zoobzio/serde/postcard"
	"github.com/zoobzio/serde/ron"
	"github.com/zoobzio/serde/toml"
	"github.com/zoobzio/serde/url"
	"github.com/zoobzio/serde/yaml"
)

// entry binds a format to its codec and the sentinels its failures map to.
type entry struct {
	codec     Codec
	textOnly  bool  // input must be valid UTF-8 before the codec sees it
	encodeErr error // variant for Marshal failures
	decodeErr error // variant for Unmarshal failures
}

// registry is built once and never mutated afterwards.
var registry = buildRegistry()

func buildRegistry() [formatEnd]entry {
	var table [formatEnd]entry

	table[BSON] = entry{codec: bson.New(), encodeErr: ErrBSONSerialize, decodeErr: ErrBSONDeserialize}
	table[CBOR] = entry{codec: cbor.New(), encodeErr: ErrCBOR, decodeErr: ErrCBOR}
	table[FlexBuffers] = entry{codec: flexbuffers.New(), encodeErr: ErrFlexBuffersSerialize, decodeErr: ErrFlexBuffersDeserialize}
	table[JSON] = entry{codec: json.New(), encodeErr: ErrJSON, decodeErr: ErrJSON}
	table[JSON5] = entry{codec: json5.New(), textOnly: true, encodeErr: ErrJSON5, decodeErr: ErrJSON5}
	table[Lexpr] = entry{codec: lexpr.New(), encodeErr: ErrLexpr, decodeErr: ErrLexpr}
	table[MessagePack] = entry{codec: msgpack.New(), encodeErr: ErrMessagePackEncode, decodeErr: ErrMessagePackDecode}
	table[Pickle] = entry{codec: pickle.New(), encodeErr: ErrPickle, decodeErr: ErrPickle}
	table[Postcard] = entry{codec: postcard.New(), encodeErr: ErrPostcard, decodeErr: ErrPostcard}
	table[RON] = entry{codec: ron.New(), textOnly: true, encodeErr: ErrRON, decodeErr: ErrRON}
	table[TOML] = entry{codec: toml.New(), encodeErr: ErrTOMLSerialize, decodeErr: ErrTOMLDeserialize}
	table[URL] = entry{codec: url.New(), encodeErr: ErrURL, decodeErr: ErrURL}
	table[YAML] = entry{codec: yaml.New(), encodeErr: ErrYAML, decodeErr: ErrYAML}
	registerXML(&table)

	return table
}

func init() {
	// Every enabled format must have a dispatch arm.
	for _, f := range Formats() {
		e := registry[f]
		if e.codec == nil || e.encodeErr == nil || e.decodeErr == nil {
			panic(fmt.Sprintf("serde: format %s has no registered codec", f))
		}
	}
}

// lookup returns the registry entry for a resolved format.
func lookup(f Format) entry {
	return registry[f]
}

// CodecFor returns the codec registered for a format.
func CodecFor[F FormatToken](format F) (Codec, error) {
	f, err := Resolve(format)
	if err != nil {
		return nil, err
	}
	return lookup(f).codec, nil
}
