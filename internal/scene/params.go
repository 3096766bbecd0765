package scene

// HeartParams controls the parametric heart cloud.
type HeartParams struct {
	Count        int     `yaml:"count"`
	RadiusBase   float64 `yaml:"radius_base"`
	RadiusJitter float64 `yaml:"radius_jitter"`
	DepthSpread  float64 `yaml:"depth_spread"`
	PlanarScale  float64 `yaml:"planar_scale"`
	DepthScale   float64 `yaml:"depth_scale"`
	Falloff      float64 `yaml:"falloff"`
}

func DefaultHeartParams() HeartParams {
	return HeartParams{
		Count:        12000,
		RadiusBase:   0.7,
		RadiusJitter: 0.6,
		DepthSpread:  10,
		PlanarScale:  0.06,
		DepthScale:   0.08,
		Falloff:      0.05,
	}
}

// FontSpec names a caption face and its pixel size.
type FontSpec struct {
	Name string  `yaml:"name"`
	Size float64 `yaml:"size"`
}

// TextParams controls caption rasterization and extrusion.
type TextParams struct {
	Caption        string   `yaml:"caption"`
	CanvasWidth    int      `yaml:"canvas_width"`
	CanvasHeight   int      `yaml:"canvas_height"`
	Font           FontSpec `yaml:"font"`
	Baseline       int      `yaml:"baseline"`
	Stride         int      `yaml:"stride"`
	AlphaThreshold uint8    `yaml:"alpha_threshold"`
	Layers         int      `yaml:"layers"`
	LayerSpacing   float64  `yaml:"layer_spacing"`
	PixelScale     float64  `yaml:"pixel_scale"`
	YOffset        float64  `yaml:"y_offset"`
}

func DefaultTextParams() TextParams {
	return TextParams{
		Caption:        "Dla Wiktori",
		CanvasWidth:    1200,
		CanvasHeight:   300,
		Font:           FontSpec{Name: "gobold", Size: 180},
		Baseline:       200,
		Stride:         4,
		AlphaThreshold: 128,
		Layers:         6,
		LayerSpacing:   0.05,
		PixelScale:     0.01,
		YOffset:        2.5,
	}
}

// ExplosionParams controls the burst cube and its beat gate.
type ExplosionParams struct {
	Enabled    bool    `yaml:"enabled"`
	Count      int     `yaml:"count"`
	HalfExtent float64 `yaml:"half_extent"`
	Threshold  float64 `yaml:"threshold"`
	Gain       float64 `yaml:"gain"`
}

func DefaultExplosionParams() ExplosionParams {
	return ExplosionParams{
		Enabled:    false,
		Count:      2000,
		HalfExtent: 0.25,
		Threshold:  0.12,
		Gain:       8,
	}
}

// BeatParams defines beat(t) = A1 sin(W1 t) + A2 sin(W2 t).
type BeatParams struct {
	A1 float64 `yaml:"a1"`
	W1 float64 `yaml:"w1"`
	A2 float64 `yaml:"a2"`
	W2 float64 `yaml:"w2"`
}

// MotionParams defines the shared tumble: spin about Y, tilt about X.
type MotionParams struct {
	SpinRate float64 `yaml:"spin_rate"`
	TiltRate float64 `yaml:"tilt_rate"`
	TiltAmp  float64 `yaml:"tilt_amp"`
}

func DefaultMotionParams() MotionParams {
	return MotionParams{SpinRate: 0.4, TiltRate: 0.6, TiltAmp: 0.3}
}

// ShapeStyle holds the material constants of one shape.
type ShapeStyle struct {
	BaseSize      float64 `yaml:"base_size"`
	SizeGain      float64 `yaml:"size_gain"`
	BaseIntensity float64 `yaml:"base_intensity"`
	IntensityGain float64 `yaml:"intensity_gain"`
	Green         float64 `yaml:"green"`
	Blue          float64 `yaml:"blue"`
	Opacity       float64 `yaml:"opacity"`
	Scales        bool    `yaml:"scales"`
}

// Styles groups the three shape styles.
type Styles struct {
	Heart     ShapeStyle `yaml:"heart"`
	Text      ShapeStyle `yaml:"text"`
	Explosion ShapeStyle `yaml:"explosion"`
}

// Animation bundles every constant the frame animator reads.
type Animation struct {
	Beat      BeatParams
	Motion    MotionParams
	Styles    Styles
	Explosion ExplosionParams
}
