package codec

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/wangshengjia/leego/pkg/errors"
)

const schemaURL = "https://leego.local/schema/document.json"

//go:embed schema.json
var schemaSource string

var documentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
})

// Validate checks a document or bare brick against the document schema.
// Unlike decoding, which drops malformed fields, validation rejects them.
func Validate(data []byte, f Format) error {
	m, err := parseObject(data, f)
	if err != nil {
		return decodeFailure("codec.Validate", "", err)
	}
	return ValidateMap(m)
}

// ValidateMap is Validate on an already parsed object.
func ValidateMap(m map[string]any) error {
	schema, err := documentSchema()
	if err != nil {
		return &errors.LeeGoError{Op: "codec.Validate", Kind: errors.KindUnknown, Err: err}
	}
	if err := schema.Validate(m); err != nil {
		name, _ := m[KeyName].(string)
		return decodeFailure("codec.Validate", name, err)
	}
	return nil
}
