// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import "errors"

// Initialisation and factory failure classes. Context creation
// failure is fatal to the device; resource failures are local to one
// factory call and leave the device usable. An absent capability is
// not an error at all, it only yields a false feature flag.
var (
	// ErrContextCreation reports that the native context could not
	// be established. The device is unusable; the caller must fall
	// back to another backend or give up.
	ErrContextCreation = errors.New("gfx: native context creation failed")

	// ErrResourceInitialisation reports that a factory call failed
	// to initialise its resource. The half-constructed resource is
	// discarded and the device remains usable.
	ErrResourceInitialisation = errors.New("gfx: resource initialisation failed")

	// ErrInvalidConfig reports a configuration the factory cannot
	// act on, such as mismatched buffer and region counts.
	ErrInvalidConfig = errors.New("gfx: invalid configuration")
)
