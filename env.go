package oscollapse

// EnvChannel is an optional environmental decoherence channel.
//
// "Not supplied" and "supplied with rate zero" are distinct states: an
// absent channel means the env and combined predictions are skipped
// entirely, while Env(0) evaluates them and predicts no loss. Callers that
// flattened this distinction into a magic 0.0 kept producing wrong HasEnv
// columns, hence the tagged value.
type EnvChannel struct {
	rate    float64
	present bool
}

// Env returns a present channel with the given decoherence rate (s⁻¹).
// Negative rates are rejected later, at formula evaluation.
func Env(rate float64) EnvChannel {
	return EnvChannel{rate: rate, present: true}
}

// NoEnv returns the absent channel.
func NoEnv() EnvChannel {
	return EnvChannel{}
}

// Present reports whether the channel was supplied.
func (e EnvChannel) Present() bool {
	return e.present
}

// Rate returns the decoherence rate, zero for the absent channel.
func (e EnvChannel) Rate() float64 {
	return e.rate
}
