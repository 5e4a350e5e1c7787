package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/skelecursor/creature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedCreaturesMatchDefaults(t *testing.T) {
	cases := []struct {
		name string
		want creature.Config
	}{
		{"lizard", creature.DefaultLizard()},
		{"worm", creature.DefaultWorm()},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := LoadCreatureSpec(c.name)
			require.NoError(t, err)
			assert.Equal(t, c.want, spec.Config)
			assert.NotNil(t, spec.Render.Palette.Bone)
			assert.Greater(t, spec.Render.TrailLength, 0)
		})
	}
}

func TestLoadCreatureSpecUnknown(t *testing.T) {
	_, err := LoadCreatureSpec("salamander")
	assert.Error(t, err)
}

func TestNamesListsEmbeddedPrefabs(t *testing.T) {
	assert.ElementsMatch(t, []string{"lizard", "worm"}, Names())
	assert.Equal(t, "worm.yaml", CreatureFile("worm"))
	assert.Equal(t, "worm.yaml", CreatureFile(" worm.yaml "))
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"wander.tengo", "scripts/wander.tengo", "prefabs/scripts/wander.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "phase")
	}

	_, err := LoadScript("missing.tengo")
	assert.Error(t, err)
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#ebf5ff", want: color.NRGBA{R: 0xeb, G: 0xf5, B: 0xff, A: 0xff}},
		{in: "ebf5ff40", want: color.NRGBA{R: 0xeb, G: 0xf5, B: 0xff, A: 0x40}},
		{in: "#abc", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := got.UnmarshalText([]byte(c.in))
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Color)
		})
	}

	assert.Equal(t, color.Black, ColorOr(nil, color.Black))
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestApplyOverride(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		spec, err := LoadCreatureSpec("lizard")
		require.NoError(t, err)

		path := writeFile(t, "tuning.toml", `
[chain]
damping = 0.9
iterations = 7

[render.palette]
eye = "#00ff00"
`)
		require.NoError(t, ApplyOverride(spec, path))
		assert.Equal(t, 0.9, spec.Chain.Damping)
		assert.Equal(t, 7, spec.Chain.Iterations)
		assert.Equal(t, 10.0, spec.Chain.Rest)
		assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, spec.Render.Palette.Eye.Color)
		assert.Len(t, spec.Pose.Limbs, 4)
	})

	t.Run("yaml", func(t *testing.T) {
		spec, err := LoadCreatureSpec("worm")
		require.NoError(t, err)

		path := writeFile(t, "tuning.yaml", "follow:\n  decay: 0.2\n")
		require.NoError(t, ApplyOverride(spec, path))
		assert.Equal(t, 0.2, spec.Follow.Decay)
		assert.Equal(t, 0.05, spec.Follow.PinDecay)
	})

	t.Run("invalid_keeps_spec", func(t *testing.T) {
		spec, err := LoadCreatureSpec("lizard")
		require.NoError(t, err)
		eye := spec.Render.Palette.Eye.Color

		path := writeFile(t, "bad.toml", "[chain]\ndamping = 1.5\n[render.palette]\neye = \"#000000\"\n")
		err = ApplyOverride(spec, path)
		assert.ErrorIs(t, err, creature.ErrInvalidConfig)
		assert.Equal(t, 0.96, spec.Chain.Damping)
		assert.Equal(t, eye, spec.Render.Palette.Eye.Color)
	})

	t.Run("unsupported", func(t *testing.T) {
		spec, err := LoadCreatureSpec("lizard")
		require.NoError(t, err)
		assert.Error(t, ApplyOverride(spec, writeFile(t, "tuning.ini", "x=1")))
		assert.Error(t, ApplyOverride(spec, filepath.Join(t.TempDir(), "missing.toml")))
	})
}

func TestMarshalSpecReloads(t *testing.T) {
	spec, err := LoadCreatureSpec("lizard")
	require.NoError(t, err)
	spec.Chain.Stiffness = 0.5

	data, err := MarshalSpec(spec)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ebf5ff40")

	var back CreatureSpec
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, spec.Config, back.Config)
	assert.Equal(t, spec.Render.Palette.Bone.Color, back.Render.Palette.Bone.Color)
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lizard.yaml"), []byte("name: lizard\n"), 0o644))

	select {
	case c := <-w.Events:
		assert.Equal(t, Change{Name: "lizard.yaml", Kind: ChangeSpec}, c)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	assert.Equal(t, ChangeScript, classify("scripts/wander.tengo"))
	assert.Equal(t, ChangeTuning, classify("tuning.TOML"))
	assert.Equal(t, ChangeKind(0), classify("readme.md"))
}
