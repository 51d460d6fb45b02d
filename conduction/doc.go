// Package conduction estimates muscle-fiber conduction velocity from
// multi-channel EMG recordings.
//
// The input is a signal matrix with one channel per row, typically single-
// or double-differentiated MUAP segments taken from one spatial column of
// an electrode array, together with the inter-electrode distance and the
// sampling frequency. The propagation delay between adjacent channels is
// estimated in three stages:
//
//   - [Estimator.SeedDelay]: coarse cross-correlation scan over a
//     physiologically bounded lag range, refined to sub-sample resolution
//     by a parabolic fit around the correlation peak.
//   - [Derivatives]: analytic first and second derivative of the
//     multichannel beamforming log-likelihood with respect to the delay,
//     for one chosen reference channel.
//   - [Estimator.Optimize]: damped Newton-Raphson refinement that sums the
//     derivatives over every reference channel and converts the final
//     delay into a velocity in m/s.
//
// [Estimator.Estimate] chains the three stages for the common case.
//
// All operations are pure functions of their inputs; the signal matrix is
// never modified and calls may run concurrently without coordination.
package conduction
