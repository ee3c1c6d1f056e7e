// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import "github.com/dop251/goja"

// WithProbe replaces the capability probe consulted by u.
func (u *Unity) WithProbe(probe func() bool) *Unity {
	u.probe = probe
	return u
}

// ProbeComments runs the capability probe in given runtime.
func ProbeComments(vm *goja.Runtime) bool { return probeComments(vm) }

// Factory wraps suite source into its member factory.
var Factory = factory
