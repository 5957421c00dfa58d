// Package spectral holds the spectral statistics of a stationary Gaussian
// stress-response process that frequency-domain fatigue estimators consume.
//
// The package does not compute moments from a power spectral density. A
// [Stats] value is filled in by the caller from moments obtained elsewhere
// and is treated as read-only by every estimator.
package spectral
