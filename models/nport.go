// SPDX-License-Identifier: MIT
// Package: pdkmodels/models
//
// nport.go - ideal lossless pass-through stand-ins parameterized only by
// port names, memoized per exact port tuple for the process lifetime.

package models

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/katalvlaran/pdkmodels/sdict"
	"github.com/katalvlaran/pdkmodels/vec"
)

// nportWavelength is the default wavelength of the pass-through models.
const nportWavelength = 1.5

type nportKey struct {
	n     int
	ports [4]sdict.Port
}

var nportCache = struct {
	sync.Mutex
	m map[nportKey]*Model
}{m: make(map[nportKey]*Model)}

// NPort2 returns a 2-port with unit transmission (p1,p2).
func NPort2(p1, p2 sdict.Port) (*Model, error) {
	return nport([]sdict.Port{p1, p2}, func(one []complex128, ps []sdict.Port) map[sdict.Pair][]complex128 {
		return map[sdict.Pair][]complex128{
			sdict.P(ps[0], ps[1]): one,
		}
	})
}

// NPort3 returns a 1×2 splitter: (p1,p2) and (p1,p3) at 1/√2 each.
// Total output power is 1 only in amplitude-sum terms; not power-normalized.
func NPort3(p1, p2, p3 sdict.Port) (*Model, error) {
	return nport([]sdict.Port{p1, p2, p3}, func(one []complex128, ps []sdict.Port) map[sdict.Pair][]complex128 {
		thru := vec.MulScalar(one, 1/math.Sqrt2)
		return map[sdict.Pair][]complex128{
			sdict.P(ps[0], ps[1]): thru,
			sdict.P(ps[0], ps[2]): thru,
		}
	})
}

// NPort4 returns an ideal directional coupler: through (p1,p4),(p2,p3) at
// 1/√2 and cross (p1,p3),(p2,p4) at j/√2.
func NPort4(p1, p2, p3, p4 sdict.Port) (*Model, error) {
	return nport([]sdict.Port{p1, p2, p3, p4}, func(one []complex128, ps []sdict.Port) map[sdict.Pair][]complex128 {
		thru := vec.MulScalar(one, 1/math.Sqrt2)
		cross := vec.MulScalar(thru, 1i)
		return map[sdict.Pair][]complex128{
			sdict.P(ps[0], ps[3]): thru,
			sdict.P(ps[1], ps[2]): thru,
			sdict.P(ps[0], ps[2]): cross,
			sdict.P(ps[1], ps[3]): cross,
		}
	})
}

// nport validates the port names, then returns the cached model for the
// tuple or builds and caches a new one. Failed calls cache nothing.
func nport(ports []sdict.Port, pairs func(one []complex128, ps []sdict.Port) map[sdict.Pair][]complex128) (*Model, error) {
	key := nportKey{n: len(ports)}
	seen := make(map[sdict.Port]struct{}, len(ports))
	for i, p := range ports {
		if p == "" {
			return nil, fmt.Errorf("NPort%d: port %d: %w", len(ports), i+1, sdict.ErrEmptyPort)
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("NPort%d: %q: %w", len(ports), p, ErrDuplicatePort)
		}
		seen[p] = struct{}{}
		key.ports[i] = p
	}

	nportCache.Lock()
	defer nportCache.Unlock()
	if m, ok := nportCache.m[key]; ok {
		return m, nil
	}

	ps := append([]sdict.Port(nil), ports...)
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = string(p)
	}
	name := fmt.Sprintf("nport%d[%s]", len(ps), strings.Join(names, ","))

	g := NewGenerator(name, KindSDict, nportWavelength, Params{}, func(wl []float64, _ Params) (sdict.SDict, error) {
		return sdict.Reciprocal(pairs(vec.Fill(len(wl), 1), ps))
	})
	nportCache.m[key] = g.Model()

	return g.Model(), nil
}
