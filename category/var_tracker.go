// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package category

import (
	"strconv"
	"strings"
)

// VarTracker allocates fresh variable names. A tracker is owned by a single parse and
// cannot be used concurrently.
type VarTracker struct {
	NextId uint
}

// Reset the tracker so that names are allocated from zero again.
func (vt *VarTracker) Reset() { vt.NextId = 0 }

// Fresh returns a new variable name derived from base: `T` becomes `T_0`, then `T_1`, etc.
// Any numeric suffix already present in base is dropped.
func (vt *VarTracker) Fresh(base string) string {
	if i := strings.IndexByte(base, '_'); i >= 0 {
		base = base[:i]
	}
	name := base + "_" + strconv.FormatUint(uint64(vt.NextId), 10)
	vt.NextId++
	return name
}

// New returns a new unbound category variable derived from base.
func (vt *VarTracker) New(base string) *Var {
	return &Var{Name: vt.Fresh(base)}
}
