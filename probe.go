// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unity

import (
	"strings"
	"sync"

	"github.com/dop251/goja"
)

const probeMarker = "PROBE"

var probe struct {
	once      sync.Once
	preserved bool
}

// CommentsPreserved reports if the JavaScript host's function to source
// text conversion keeps comments of the function's source.  It is
// computed once per process.  Text based suites are refused if it
// reports true and the configured scanner isn't comment aware.
func CommentsPreserved() bool {
	probe.once.Do(func() {
		probe.preserved = probeComments(goja.New())
	})
	return probe.preserved
}

// probeComments converts a function with a commented marker to text
// and reports if the marker survived.  A runtime failing the probe
// can't be trusted hence true is reported.
func probeComments(vm *goja.Runtime) bool {
	fn, err := vm.RunString("(function () {/*" + probeMarker + "*/})")
	if err != nil {
		return true
	}
	return strings.Contains(fn.String(), probeMarker)
}
