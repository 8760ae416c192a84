package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ja7ad/radiometer/pkg/radiometer"
	"github.com/ja7ad/radiometer/pkg/types"
)

func (a *app) modelFluxCmd() *cobra.Command {
	var (
		coeffs     []float64
		calibrator string
		hz, nu1    float64
	)
	cmd := &cobra.Command{
		Use:   "model-flux",
		Short: "Evaluate a calibrator flux model 10^(c0 + c1*x + ...), x = log10(hz/nu1)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model := radiometer.FluxModel(coeffs)
			nu1Set := cmd.Flags().Changed("nu1")
			if calibrator != "" {
				cal, err := a.cfg.Calibrator(calibrator)
				if err != nil {
					return err
				}
				model = cal.Model()
				if !nu1Set && cal.ReferenceHz > 0 {
					nu1, nu1Set = cal.ReferenceHz, true
				}
			}
			if err := model.Validate(); err != nil {
				return err
			}

			var opts []radiometer.Option
			if cmd.Flags().Changed("hz") {
				opts = append(opts, radiometer.WithFrequency(hz))
			}
			if nu1Set {
				opts = append(opts, radiometer.WithReferenceFrequency(nu1))
			}
			s := radiometer.ModelFlux(model, opts...)
			return a.report("model-flux", result{Quantity: "flux", Value: s, Unit: "Jy", Human: types.Jansky(s).Humanized()})
		},
	}
	cmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "model coefficients c0,c1,c2,...")
	cmd.Flags().StringVar(&calibrator, "calibrator", "", "calibrator name from the config catalog")
	cmd.Flags().Float64Var(&hz, "hz", radiometer.DefaultReferenceHz, "observing frequency in Hz (default: reference frequency)")
	cmd.Flags().Float64Var(&nu1, "nu1", radiometer.DefaultReferenceHz, "model reference frequency in Hz (default: reference frequency)")
	cmd.MarkFlagsOneRequired("coeffs", "calibrator")
	cmd.MarkFlagsMutuallyExclusive("coeffs", "calibrator")
	return cmd
}

func (a *app) apparentFluxCmd() *cobra.Command {
	var k, d float64
	cmd := &cobra.Command{
		Use:   "apparent-flux",
		Short: "Convert an apparent temperature (K) to flux density (Jy)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			diameter, err := a.diameter(cmd, d)
			if err != nil {
				return err
			}
			s := radiometer.ApparentFlux(k, diameter, a.params(cmd).Options()...)
			return a.report("apparent-flux", result{Quantity: "flux", Value: s, Unit: "Jy", Human: types.Jansky(s).Humanized()})
		},
	}
	cmd.Flags().Float64Var(&k, "k", 0, "apparent temperature in K")
	cmd.Flags().Float64Var(&d, "diameter", 0, "antenna diameter in m")
	_ = cmd.MarkFlagRequired("k")
	return cmd
}

func (a *app) apparentTemperatureCmd() *cobra.Command {
	var s, d float64
	cmd := &cobra.Command{
		Use:   "apparent-temperature",
		Short: "Convert a flux density (Jy) to apparent temperature (K)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			diameter, err := a.diameter(cmd, d)
			if err != nil {
				return err
			}
			k := radiometer.ApparentTemperature(s, diameter, a.params(cmd).Options()...)
			return a.report("apparent-temperature", result{Quantity: "temperature", Value: k, Unit: "K", Human: types.Kelvin(k).Humanized()})
		},
	}
	cmd.Flags().Float64Var(&s, "s", 0, "flux density in Jy")
	cmd.Flags().Float64Var(&d, "diameter", 0, "antenna diameter in m")
	_ = cmd.MarkFlagRequired("s")
	return cmd
}

func (a *app) tcalCmd() *cobra.Command {
	var pon, poff, tsys float64
	cmd := &cobra.Command{
		Use:   "tcal",
		Short: "Derive calibrator temperature from ON/OFF powers and a known Tsys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tcal := radiometer.TcalOnOff(pon, poff, tsys, a.params(cmd).Options()...)
			return a.report("tcal",
				result{Quantity: "y", Value: radiometer.OnOffRatio(pon, poff)},
				result{Quantity: "tcal", Value: tcal, Unit: "K", Human: types.Kelvin(tcal).Humanized()},
			)
		},
	}
	cmd.Flags().Float64Var(&pon, "pon", 0, "power with the calibrator ON")
	cmd.Flags().Float64Var(&poff, "poff", 0, "power with the calibrator OFF")
	cmd.Flags().Float64Var(&tsys, "tsys", 0, "known system temperature in K")
	for _, f := range []string{"pon", "poff", "tsys"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func (a *app) tsysCmd() *cobra.Command {
	var (
		pon, poff  float64
		tcal, scal float64
		d, hz      float64
		calibrator string
	)
	cmd := &cobra.Command{
		Use:   "tsys",
		Short: "Derive system temperature from ON/OFF powers and a calibrator temperature or flux",
		Long: `Derive system temperature from ON/OFF powers.

The calibrator is given either as a temperature (--tcal), as a flux density
(--scal, converted with the antenna diameter), or as a catalog entry
(--calibrator, evaluated at --hz and converted like --scal).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.params(cmd).Options()
			y := radiometer.OnOffRatio(pon, poff)

			if cmd.Flags().Changed("tcal") {
				tsys := radiometer.TsysOnOff(pon, poff, tcal, opts...)
				return a.report("tsys",
					result{Quantity: "y", Value: y},
					result{Quantity: "tsys", Value: tsys, Unit: "K", Human: types.Kelvin(tsys).Humanized()},
				)
			}

			rows := []result{{Quantity: "y", Value: y}}
			if calibrator != "" {
				cal, err := a.cfg.Calibrator(calibrator)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("hz") {
					return fmt.Errorf("%w: --hz is required with --calibrator", ErrMissingInput)
				}
				scal = cal.Flux(hz)
				rows = append(rows, result{Quantity: "freq", Value: hz, Unit: "Hz", Human: types.Hertz(hz).Humanized()})
			}
			diameter, err := a.diameter(cmd, d)
			if err != nil {
				return err
			}
			tc := radiometer.ApparentTemperature(scal, diameter, opts...)
			tsys := radiometer.TsysOnOffFromFlux(pon, poff, scal, diameter, opts...)
			rows = append(rows,
				result{Quantity: "scal", Value: scal, Unit: "Jy", Human: types.Jansky(scal).Humanized()},
				result{Quantity: "tcal", Value: tc, Unit: "K", Human: types.Kelvin(tc).Humanized()},
				result{Quantity: "tsys", Value: tsys, Unit: "K", Human: types.Kelvin(tsys).Humanized()},
			)
			return a.report("tsys", rows...)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&pon, "pon", 0, "power with the calibrator ON")
	f.Float64Var(&poff, "poff", 0, "power with the calibrator OFF")
	f.Float64Var(&tcal, "tcal", 0, "calibrator temperature in K")
	f.Float64Var(&scal, "scal", 0, "calibrator flux density in Jy")
	f.StringVar(&calibrator, "calibrator", "", "calibrator name from the config catalog")
	f.Float64Var(&hz, "hz", 0, "observing frequency in Hz (with --calibrator)")
	f.Float64Var(&d, "diameter", 0, "antenna diameter in m")
	_ = cmd.MarkFlagRequired("pon")
	_ = cmd.MarkFlagRequired("poff")
	cmd.MarkFlagsOneRequired("tcal", "scal", "calibrator")
	cmd.MarkFlagsMutuallyExclusive("tcal", "scal", "calibrator")
	return cmd
}
