package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ja7ad/radiometer/internal/config"
	"github.com/ja7ad/radiometer/pkg/radiometer"
)

// ErrMissingInput is returned when a value is neither given as a flag nor
// found in the config file.
var ErrMissingInput = errors.New("missing input")

type app struct {
	configPath string
	jsonOut    bool
	verbose    bool

	// optional radiometer inputs, applied only when the flag is set
	eta, tau, airmass, tsky float64
	clip                    bool

	cfg *config.Config
	out io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout}

	root := &cobra.Command{
		Use:   "radiometer",
		Short: "System temperature calibration from ON/OFF power measurements",
		Long: `The radiometer tool derives calibrator temperature (Tcal) or system
temperature (Tsys) from calibrator ON/OFF power ratios, converts between
apparent temperature and flux density for a given antenna, and evaluates
logarithmic polynomial calibrator flux models.

Examples:
  radiometer tsys --pon 1.05 --poff 1.0 --tcal 10
  radiometer tsys --pon 1.08 --poff 1.0 --scal 40 --diameter 25 --eta 0.6
  radiometer --config site.yaml tsys --pon 1.08 --poff 1.0 --calibrator cal-a --hz 1.4e9
  radiometer model-flux --coeffs -30.7667,26.4908,-7.0977,0.605334 --hz 1.4e9`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup(stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML file with antenna, atmosphere and calibrator catalog")
	pf.BoolVar(&a.jsonOut, "json", false, "print the result as JSON instead of a table")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log resolved parameters")
	pf.Float64Var(&a.eta, "eta", 1.0, "aperture efficiency (0,1]")
	pf.Float64Var(&a.tau, "tau", 0.0, "zenith atmospheric opacity in nepers")
	pf.Float64Var(&a.airmass, "airmass", 1.0, "airmass factor")
	pf.Float64Var(&a.tsky, "tsky", radiometer.Tcmb, "sky temperature at the OFF position in K")
	pf.BoolVar(&a.clip, "clip", true, "floor ON/OFF results at zero")

	root.AddCommand(
		a.modelFluxCmd(),
		a.apparentFluxCmd(),
		a.apparentTemperatureCmd(),
		a.tcalCmd(),
		a.tsysCmd(),
	)
	return root
}

func (a *app) setup(stderr io.Writer) error {
	lvl := slog.LevelInfo
	if a.verbose {
		lvl = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl})))

	if a.configPath == "" {
		return nil
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.ReferenceHz > 0 {
		prev := radiometer.SetReferenceFrequency(cfg.ReferenceHz)
		slog.Debug("reference frequency", "hz", cfg.ReferenceHz, "prev", prev)
	}
	return nil
}

// params merges config-file values with explicitly set flags, flags winning.
func (a *app) params(cmd *cobra.Command) radiometer.Params {
	var fp radiometer.Params
	f := cmd.Flags()
	if f.Changed("eta") {
		fp.Efficiency = &a.eta
	}
	if f.Changed("tau") {
		fp.Opacity = &a.tau
	}
	if f.Changed("airmass") {
		fp.Airmass = &a.airmass
	}
	if f.Changed("tsky") {
		fp.SkyTemperature = &a.tsky
	}
	if f.Changed("clip") {
		fp.Clip = &a.clip
	}
	p := a.cfg.Params().Merge(fp)
	slog.Debug("resolved parameters",
		"eta", deref(p.Efficiency, 1.0),
		"tau", deref(p.Opacity, 0.0),
		"airmass", deref(p.Airmass, 1.0),
		"tsky", deref(p.SkyTemperature, radiometer.Tcmb),
		"clip", deref(p.Clip, true),
	)
	return p
}

// diameter returns the flag value if set, else the configured antenna diameter.
func (a *app) diameter(cmd *cobra.Command, flag float64) (float64, error) {
	if cmd.Flags().Changed("diameter") {
		return flag, nil
	}
	if a.cfg != nil && a.cfg.Antenna.Diameter > 0 {
		return a.cfg.Antenna.Diameter, nil
	}
	return 0, fmt.Errorf("%w: --diameter (or antenna.diameter in config)", ErrMissingInput)
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
