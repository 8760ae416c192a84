package radiometer

// options holds the optional inputs shared by every operation.
// Units:
//   - eta: aperture efficiency, dimensionless
//   - tau: zenith opacity, nepers
//   - airmass: dimensionless
//   - tsky: Kelvin
//   - hz/nu1: Hertz; read from ReferenceFrequency() unless set
type options struct {
	eta     float64
	tau     float64
	airmass float64
	tsky    float64
	clip    bool
	hz      float64
	nu1     float64
	hzSet   bool
	nu1Set  bool
}

func _defaultOptions() options {
	return options{
		eta:     1.0,
		tau:     0.0,
		airmass: 1.0,
		tsky:    Tcmb,
		clip:    true,
	}
}

func resolve(opts []Option) options {
	o := _defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Option sets one optional input of an operation.
type Option func(*options)

// WithEfficiency sets the aperture efficiency eta.
func WithEfficiency(eta float64) Option {
	return func(o *options) { o.eta = eta }
}

// WithOpacity sets the zenith atmospheric opacity tau in nepers.
func WithOpacity(tau float64) Option {
	return func(o *options) { o.tau = tau }
}

// WithAirmass sets the airmass factor.
func WithAirmass(airmass float64) Option {
	return func(o *options) { o.airmass = airmass }
}

// WithSkyTemperature sets the apparent sky temperature at the OFF position.
func WithSkyTemperature(tsky float64) Option {
	return func(o *options) { o.tsky = tsky }
}

// WithClip toggles flooring of ON/OFF results at zero.
func WithClip(clip bool) Option {
	return func(o *options) { o.clip = clip }
}

// WithFrequency sets the observing frequency used by ModelFlux.
func WithFrequency(hz float64) Option {
	return func(o *options) { o.hz, o.hzSet = hz, true }
}

// WithReferenceFrequency sets the model reference frequency nu1 used by ModelFlux.
func WithReferenceFrequency(nu1 float64) Option {
	return func(o *options) { o.nu1, o.nu1Set = nu1, true }
}

// Params is the serializable form of the optional inputs. Nil fields keep
// their defaults.
type Params struct {
	Efficiency     *float64 `yaml:"efficiency,omitempty" json:"efficiency,omitempty"`
	Opacity        *float64 `yaml:"tau,omitempty" json:"tau,omitempty"`
	Airmass        *float64 `yaml:"airmass,omitempty" json:"airmass,omitempty"`
	SkyTemperature *float64 `yaml:"tsky,omitempty" json:"tsky,omitempty"`
	Clip           *bool    `yaml:"clip,omitempty" json:"clip,omitempty"`
}

// Options converts p into the equivalent option list.
func (p Params) Options() []Option {
	var opts []Option
	if p.Efficiency != nil {
		opts = append(opts, WithEfficiency(*p.Efficiency))
	}
	if p.Opacity != nil {
		opts = append(opts, WithOpacity(*p.Opacity))
	}
	if p.Airmass != nil {
		opts = append(opts, WithAirmass(*p.Airmass))
	}
	if p.SkyTemperature != nil {
		opts = append(opts, WithSkyTemperature(*p.SkyTemperature))
	}
	if p.Clip != nil {
		opts = append(opts, WithClip(*p.Clip))
	}
	return opts
}

// Merge returns p with every non-nil field of over applied on top.
func (p Params) Merge(over Params) Params {
	if over.Efficiency != nil {
		p.Efficiency = over.Efficiency
	}
	if over.Opacity != nil {
		p.Opacity = over.Opacity
	}
	if over.Airmass != nil {
		p.Airmass = over.Airmass
	}
	if over.SkyTemperature != nil {
		p.SkyTemperature = over.SkyTemperature
	}
	if over.Clip != nil {
		p.Clip = over.Clip
	}
	return p
}
