package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/gcfg.v1"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "interp.config")
	require.NoError(t, os.WriteFile(fname, []byte(text), 0666))
	return fname
}

func TestExampleFileParses(t *testing.T) {
	con, err := ReadInterpolationConfig(writeConfig(t, ExampleInterpolationFile))
	require.NoError(t, err)
	assert.Equal(t, "idw", con.Method)
	assert.Equal(t, DefaultResolution, con.Resolution)
	assert.Equal(t, 2.0, con.Power)
	assert.Equal(t, "gaussian", con.VariogramModel)
	assert.Equal(t, 0.05, con.MaskDistance)
}

func TestDefaultsSurviveSparseFile(t *testing.T) {
	con, err := ReadInterpolationConfig(writeConfig(t, `[Interpolation]
Method = rbf_gaussian
RBFSmooth = 0.5`))
	require.NoError(t, err)
	assert.Equal(t, "rbf_gaussian", con.Method)
	assert.Equal(t, 0.5, con.RBFSmooth)
	assert.Equal(t, DefaultResolution, con.Resolution, "default kept")
	assert.Equal(t, 2.0, con.Power, "default kept")
}

func TestResolutionRange(t *testing.T) {
	_, err := ReadInterpolationConfig(writeConfig(t, `[Interpolation]
Method = idw
Resolution = 20`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Resolution")

	_, err = ReadInterpolationConfig(writeConfig(t, `[Interpolation]
Method = idw
Resolution = 500`))
	assert.Error(t, err)
}

func TestBadValuesRejected(t *testing.T) {
	for name, text := range map[string]string{
		"non-positive power": "[Interpolation]\nMethod = idw\nPower = 0",
		"negative smoothing": "[Interpolation]\nMethod = idw\nSmoothing = -1",
		"negative mask":      "[Interpolation]\nMethod = idw\nMaskDistance = -0.1",
		"bad variogram":      "[Interpolation]\nMethod = idw\nVariogramModel = cubic",
	} {
		_, err := ReadInterpolationConfig(writeConfig(t, text))
		assert.Error(t, err, name)
	}
}

func TestEmptyMethodRejected(t *testing.T) {
	wrap := DefaultInterpolationWrapper()
	wrap.Interpolation.Method = ""
	err := gcfg.ReadStringInto(wrap, "[Interpolation]\nResolution = 80")
	require.NoError(t, err)
	assert.Error(t, wrap.Interpolation.CheckInit())
}

func TestParamsConversion(t *testing.T) {
	con, err := ReadInterpolationConfig(writeConfig(t, `[Interpolation]
Method = idw
Power = 3.5
Smoothing = 0.25`))
	require.NoError(t, err)
	p := con.Params()
	assert.Equal(t, 3.5, p.Power)
	assert.Equal(t, 0.25, p.Smoothing)
}
