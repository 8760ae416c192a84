package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja7ad/radiometer/internal/config"
	"github.com/ja7ad/radiometer/pkg/radiometer"
)

type jsonReport struct {
	Operation string `json:"operation"`
	Results   []struct {
		Quantity string `json:"quantity"`
		Value    any    `json:"value"`
		Unit     string `json:"unit"`
	} `json:"results"`
}

func (r jsonReport) value(t *testing.T, quantity string) any {
	t.Helper()
	for _, res := range r.Results {
		if res.Quantity == quantity {
			return res.Value
		}
	}
	t.Fatalf("quantity %q not in report", quantity)
	return nil
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	prev := radiometer.ReferenceFrequency()
	t.Cleanup(func() { radiometer.SetReferenceFrequency(prev) })

	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func executeJSON(t *testing.T, args ...string) jsonReport {
	t.Helper()
	out, err := execute(t, append([]string{"--json"}, args...)...)
	require.NoError(t, err)
	var r jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &r), out)
	return r
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	doc := `
antenna:
  diameter: 25
  efficiency: 0.6
tsky: 5
reference_hz: 1e6
calibrators:
  cal-b:
    coefficients: [1.0, -0.5]
    reference_hz: 1e9
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestTsys_ByTemperature(t *testing.T) {
	r := executeJSON(t, "tsys", "--pon", "1.05", "--poff", "1.0", "--tcal", "10")
	assert.Equal(t, "tsys", r.Operation)
	assert.InDelta(t, radiometer.TsysOnOff(1.05, 1.0, 10), r.value(t, "tsys"), 1e-9)
	assert.InDelta(t, 0.05, r.value(t, "y"), 1e-12)
}

func TestTsys_ByFlux(t *testing.T) {
	r := executeJSON(t, "tsys", "--pon", "1.08", "--poff", "1.0", "--scal", "40", "--diameter", "25", "--eta", "0.6", "--tau", "0.05", "--airmass", "1.5")
	opts := []radiometer.Option{radiometer.WithEfficiency(0.6), radiometer.WithOpacity(0.05), radiometer.WithAirmass(1.5)}
	assert.InDelta(t, radiometer.TsysOnOffFromFlux(1.08, 1.0, 40, 25, opts...), r.value(t, "tsys"), 1e-9)
	assert.InDelta(t, radiometer.ApparentTemperature(40, 25, opts...), r.value(t, "tcal"), 1e-9)
}

func TestTsys_ByCalibratorFromConfig(t *testing.T) {
	cfgPath := writeConfig(t)
	r := executeJSON(t, "--config", cfgPath, "tsys", "--pon", "1.01", "--poff", "1.0", "--calibrator", "cal-b", "--hz", "1e10")

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	cal, err := cfg.Calibrator("cal-b")
	require.NoError(t, err)
	scal := cal.Flux(1e10)

	opts := []radiometer.Option{radiometer.WithEfficiency(0.6), radiometer.WithSkyTemperature(5)}
	assert.InDelta(t, scal, r.value(t, "scal"), 1e-12)
	want := radiometer.TsysOnOffFromFlux(1.01, 1.0, scal, 25, opts...)
	require.Greater(t, want, 0.0)
	assert.InDelta(t, want, r.value(t, "tsys"), 1e-9)
}

func TestTsys_FlagOverridesConfig(t *testing.T) {
	cfgPath := writeConfig(t)
	r := executeJSON(t, "--config", cfgPath, "--tsky", "1", "tsys", "--pon", "1.05", "--poff", "1.0", "--tcal", "10")
	assert.InDelta(t, 199.0, r.value(t, "tsys"), 1e-9)
}

func TestTsys_Errors(t *testing.T) {
	_, err := execute(t, "tsys", "--pon", "1.08", "--poff", "1.0", "--scal", "40")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = execute(t, "--config", writeConfig(t), "tsys", "--pon", "1.08", "--poff", "1.0", "--calibrator", "nope", "--hz", "1e9")
	assert.ErrorIs(t, err, config.ErrUnknownCalibrator)

	_, err = execute(t, "--config", writeConfig(t), "tsys", "--pon", "1.08", "--poff", "1.0", "--calibrator", "cal-b")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = execute(t, "tsys", "--pon", "1.08", "--poff", "1.0")
	assert.Error(t, err)

	_, err = execute(t, "tsys", "--pon", "1.08", "--poff", "1.0", "--tcal", "1", "--scal", "2")
	assert.Error(t, err)
}

func TestTcal_Clip(t *testing.T) {
	r := executeJSON(t, "tcal", "--pon", "80", "--poff", "100", "--tsys", "40")
	assert.Equal(t, 0.0, r.value(t, "tcal"))

	r = executeJSON(t, "tcal", "--pon", "80", "--poff", "100", "--tsys", "40", "--clip=false")
	assert.InDelta(t, -0.2*(radiometer.Tcmb+40), r.value(t, "tcal"), 1e-9)
}

func TestTcal_NonFiniteAsString(t *testing.T) {
	r := executeJSON(t, "tcal", "--pon", "1", "--poff", "0", "--tsys", "40")
	assert.Equal(t, "+Inf", r.value(t, "tcal"))
}

func TestModelFlux(t *testing.T) {
	r := executeJSON(t, "model-flux", "--coeffs", "1,-0.5", "--hz", "1e8", "--nu1", "1e6")
	assert.InDelta(t, 1.0, r.value(t, "flux"), 1e-12)

	// hz omitted: reads the reference frequency, only c0 survives
	r = executeJSON(t, "model-flux", "--coeffs", "2,-0.5")
	assert.InDelta(t, 100.0, r.value(t, "flux"), 1e-9)

	// catalog reference frequency is used when --nu1 is omitted
	r = executeJSON(t, "--config", writeConfig(t), "model-flux", "--calibrator", "cal-b", "--hz", "1e9")
	assert.InDelta(t, 10.0, r.value(t, "flux"), 1e-9)

	_, err := execute(t, "model-flux")
	assert.Error(t, err)
}

func TestApertureCommands(t *testing.T) {
	r := executeJSON(t, "apparent-temperature", "--s", "1", "--diameter", "100")
	assert.InDelta(t, radiometer.ApparentTemperature(1, 100), r.value(t, "temperature"), 1e-12)

	r = executeJSON(t, "--config", writeConfig(t), "apparent-flux", "--k", "10")
	assert.InDelta(t, radiometer.ApparentFlux(10, 25, radiometer.WithEfficiency(0.6)), r.value(t, "flux"), 1e-9)
}

func TestTableOutput(t *testing.T) {
	out, err := execute(t, "tsys", "--pon", "1.05", "--poff", "1.0", "--tcal", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "QUANTITY")
	assert.Contains(t, out, "tsys")
	assert.Contains(t, out, "197.272 K")
}
