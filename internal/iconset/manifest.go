package iconset

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/tidwall/pretty"

	"github.com/hrko/download-icon/pkg/graphics"
)

type Manifest struct {
	Icons []Result `json:"icons"`
}

func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func marshalManifest(results []Result) ([]byte, error) {
	m := Manifest{Icons: results}
	if m.Icons == nil {
		m.Icons = []Result{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(b), nil
}

func writeManifest(path string, results []Result) error {
	b, err := marshalManifest(results)
	if err != nil {
		return err
	}
	return graphics.WriteFile(path, b)
}
