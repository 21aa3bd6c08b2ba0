package advanced

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Prototype fixture template. Geometry never looks inside it: it is copied
// onto every piece of a decomposition so that each physics fixture built from
// a piece owns its own material attributes.
type FixtureDef struct {
	Density     float64 `yaml:"density"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
	IsSensor    bool    `yaml:"sensor"`
	// Anything else the consumer cares about
	Attributes map[string]float64 `yaml:"attributes,omitempty"`
}

func (def FixtureDef) Clone() FixtureDef {
	clone := def
	if def.Attributes != nil {
		clone.Attributes = make(map[string]float64, len(def.Attributes))
		for k, v := range def.Attributes {
			clone.Attributes[k] = v
		}
	}
	return clone
}

func ParseFixtureDef(r io.Reader) (FixtureDef, error) {
	var def FixtureDef
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return FixtureDef{}, errors.Wrap(ErrParse, err.Error())
	}
	return def, nil
}

func LoadFixtureDef(path string) (FixtureDef, error) {
	f, err := os.Open(path)
	if err != nil {
		return FixtureDef{}, errors.Wrapf(err, "open fixture definition %q", path)
	}
	defer f.Close()

	def, err := ParseFixtureDef(f)
	if err != nil {
		return FixtureDef{}, errors.WithMessagef(err, "fixture definition %q", path)
	}
	return def, nil
}
