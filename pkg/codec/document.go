package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/wangshengjia/leego/pkg/brick"
	"github.com/wangshengjia/leego/pkg/errors"
)

// CurrentVersion is the document version written by EncodeDocument.
const CurrentVersion = "v1.0.0"

// Keys of a document envelope.
const (
	KeyVersion = "version"
	KeyBrick   = "brick"
)

// Document is a versioned brick:
//
//	{"version": "v1.0.0", "brick": {"name": "header", ...}}
//
// An object with a top-level name instead of a brick key is read as a bare
// brick of CurrentVersion, and is gated like any other document of that
// version.
type Document struct {
	Version string
	Brick   brick.Brick
}

// CheckVersion reports whether a document of version v can be read when the
// oldest accepted version is minVersion: v must be a semantic version, not
// older than minVersion, with the major version of CurrentVersion. The
// leading "v" may be omitted from both.
func CheckVersion(version, minVersion string) error {
	v := canonical(version)
	if !semver.IsValid(v) {
		return fmt.Errorf("document version %q is not a semantic version", version)
	}
	if semver.Major(v) != semver.Major(CurrentVersion) {
		return fmt.Errorf("document version %s is incompatible with %s", v, semver.Major(CurrentVersion))
	}
	if minVersion = canonical(minVersion); minVersion != "" && semver.Compare(v, minVersion) < 0 {
		return fmt.Errorf("document version %s is older than %s", v, minVersion)
	}
	return nil
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// DecodeDocument decodes a JSON or YAML document and checks its version
// against minVersion.
func (d *Decoder) DecodeDocument(data []byte, f Format, minVersion string) (Document, error) {
	m, err := parseObject(data, f)
	if err != nil {
		return Document{}, decodeFailure("codec.DecodeDocument", "", err)
	}
	return d.DecodeDocumentMap(m, minVersion)
}

// DecodeDocumentMap is DecodeDocument on an already parsed object.
func (d *Decoder) DecodeDocumentMap(m map[string]any, minVersion string) (Document, error) {
	raw, wrapped := m[KeyBrick]
	if !wrapped {
		if err := CheckVersion(CurrentVersion, minVersion); err != nil {
			return Document{}, decodeFailure("codec.DecodeDocument", "", err)
		}
		b, err := d.DecodeMap(m)
		if err != nil {
			return Document{}, err
		}
		return Document{Version: CurrentVersion, Brick: b}, nil
	}

	version, _ := m[KeyVersion].(string)
	if err := CheckVersion(version, minVersion); err != nil {
		return Document{}, decodeFailure("codec.DecodeDocument", "", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return Document{}, decodeFailure("codec.DecodeDocument", "",
			&errors.DecodeError{Field: KeyBrick, Want: "object", Got: raw})
	}
	b, err := d.brick(obj, KeyBrick)
	if err != nil {
		return Document{}, err
	}
	return Document{Version: canonical(version), Brick: b}, nil
}

// DecodeDocument decodes a document with a default decoder.
func DecodeDocument(data []byte, f Format, minVersion string) (Document, error) {
	return NewDecoder().DecodeDocument(data, f, minVersion)
}

// EncodeDocument returns the document of b at CurrentVersion.
func EncodeDocument(b brick.Brick, f Format) ([]byte, error) {
	m := map[string]any{KeyVersion: CurrentVersion, KeyBrick: EncodeMap(b)}
	if f == FormatYAML {
		return yaml.Marshal(m)
	}
	return json.MarshalIndent(m, "", "  ")
}
