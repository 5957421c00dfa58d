// Package fatigue estimates fatigue life of structures under stationary
// Gaussian random loading from spectral statistics of the stress response.
//
// All estimators are closed-form, pure and safe for concurrent use. They take
// a [spectral.Stats] bundle, the S-N curve coefficient C [MPa^k] and exponent
// k, and return the expected time to failure in the time unit of the
// statistics' crossing rates (normally seconds).
//
// # Estimators
//
//   - [Alpha075Life]: Benasciutti-Tovo bandwidth correction of the
//     narrow-band damage, D = a075^2 * D_NB with a075 = m075/sqrt(m0*m150).
//   - [NarrowBandLife]: Rayleigh (narrow-band) approximation, D_NB.
//   - [ZhaoBakerLife]: Weibull/Rayleigh mixture of Zhao and Baker in its base
//     and improved variants.
//
// # Errors
//
// Invalid inputs are reported with sentinel errors that can be matched with
// errors.Is. A zero damage intensity (no crossings, or a vanishing m075)
// yields math.Inf(1) together with [ErrInfiniteLife], so callers that treat
// infinite life as a valid answer can keep the value and drop the error.
package fatigue
