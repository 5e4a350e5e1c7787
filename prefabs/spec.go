package prefabs

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/skelecursor/creature"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CreatureSpec is one creature prefab: simulation tuning plus what only the
// renderers care about.
type CreatureSpec struct {
	creature.Config `yaml:",inline"`

	WanderScript string     `yaml:"wander_script,omitempty" toml:"wander_script"`
	Render       RenderSpec `yaml:"render" toml:"render"`
}

type RenderSpec struct {
	HeadLength  float64     `yaml:"head_length" toml:"head_length"`
	TrailLength int         `yaml:"trail_length" toml:"trail_length"`
	DustCount   int         `yaml:"dust_count" toml:"dust_count"`
	Palette     PaletteSpec `yaml:"palette" toml:"palette"`
}

type PaletteSpec struct {
	Bone       *YAMLColor `yaml:"bone" toml:"bone"`
	BoneShadow *YAMLColor `yaml:"bone_shadow" toml:"bone_shadow"`
	Eye        *YAMLColor `yaml:"eye" toml:"eye"`
	Aura       *YAMLColor `yaml:"aura" toml:"aura"`
	Background *YAMLColor `yaml:"background" toml:"background"`
	Dust       *YAMLColor `yaml:"dust" toml:"dust"`
}

// CreatureFile maps a creature name to its prefab file.
func CreatureFile(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".yaml")
	return name + ".yaml"
}

// LoadCreatureSpec reads and validates the named creature prefab.
func LoadCreatureSpec(name string) (*CreatureSpec, error) {
	file := CreatureFile(name)
	spec, err := LoadSpec[CreatureSpec](file)
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(file, ".yaml")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", file, err)
	}
	return &spec, nil
}

// ApplyOverride decodes a user tuning file on top of spec. Fields missing
// from the file keep their prefab values. TOML and YAML are accepted.
func ApplyOverride(spec *CreatureSpec, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("prefabs: read override %s: %w", path, err)
	}

	next := spec.Clone()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(next); err != nil {
			return fmt.Errorf("prefabs: decode override %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, next); err != nil {
			return fmt.Errorf("prefabs: decode override %s: %w", path, err)
		}
	default:
		return fmt.Errorf("prefabs: override %s: unsupported format", path)
	}

	if err := next.Validate(); err != nil {
		return fmt.Errorf("prefabs: override %s: %w", path, err)
	}
	*spec = *next
	return nil
}

// Clone deep-copies the spec so decoding into the copy leaves spec alone.
func (s *CreatureSpec) Clone() *CreatureSpec {
	out := *s
	out.Pose.Limbs = append([]creature.LimbConfig(nil), s.Pose.Limbs...)
	p := &out.Render.Palette
	for _, c := range []**YAMLColor{&p.Bone, &p.BoneShadow, &p.Eye, &p.Aura, &p.Background, &p.Dust} {
		if *c != nil {
			dup := **c
			*c = &dup
		}
	}
	return &out
}

// MarshalSpec renders spec back to prefab YAML.
func MarshalSpec(spec *CreatureSpec) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(spec); err != nil {
		return nil, fmt.Errorf("prefabs: marshal %s: %w", spec.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ColorOr returns c's color, or fallback when c is unset.
func ColorOr(c *YAMLColor, fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	return c.UnmarshalText([]byte(value.Value))
}

func (c *YAMLColor) UnmarshalText(text []byte) error {
	raw := string(text)
	s := strings.TrimPrefix(raw, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", raw)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func (c *YAMLColor) MarshalYAML() (any, error) {
	if c == nil || c.Color == nil {
		return nil, nil
	}
	n := color.NRGBAModel.Convert(c.Color).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A), nil
}
