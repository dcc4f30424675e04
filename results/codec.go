// File: codec.go
// Role: versioned binary round-trip for the full results bundle.
// Wire format (all integers and float bits little-endian):
//
//	magic "MCRP" | version u8 | warmup u32
//	opts: bins u32 | kdePoints u32 | alpha f64 | maxLag u32
//	map:  paramset
//	rates: f64 array | meanLL: f64 array
//	output: u32 count | paramset...
//	chains: u32 M | (u32 N | paramset...)...
//
// where "f64 array" is u32 length + raw IEEE-754 bits and "paramset" is an
// f64 array of values followed by the fitness f64. An explicit schema keeps
// the payload portable across languages, unlike an object-graph serializer.

package results

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/probelab/mcstat/core"
)

var payloadMagic = [4]byte{'M', 'C', 'R', 'P'}

// payloadVersion is bumped on any layout change.
const payloadVersion uint8 = 1

// Encode serializes the full bundle, nested chain histories included.
// Decode(Encode(r)) reproduces every field exactly.
func (r *Report) Encode() []byte {
	var e encoder

	e.buf = append(e.buf, payloadMagic[:]...)
	e.buf = append(e.buf, payloadVersion)
	e.u32(uint32(r.warmup))

	e.u32(uint32(r.opts.Bins))
	e.u32(uint32(r.opts.KDEPoints))
	e.f64(r.opts.Alpha)
	e.u32(uint32(r.opts.MaxLag))

	e.paramSet(r.best)
	e.floats(r.rates)
	e.floats(r.meanLL)

	e.u32(uint32(len(r.output)))
	for _, p := range r.output {
		e.paramSet(p)
	}

	e.u32(uint32(len(r.chains)))
	for _, c := range r.chains {
		e.u32(uint32(len(c)))
		for _, p := range c {
			e.paramSet(p)
		}
	}

	return e.buf
}

// Decode parses a payload produced by Encode and rebuilds the report.
// Summaries are reconstructed deterministically from the decoded samples,
// so all fields — including ParameterResults — match the original exactly.
// A corrupt or truncated buffer yields an error and no report.
func Decode(payload []byte) (*Report, error) {
	d := decoder{buf: payload}

	magic, err := d.bytes(4)
	if err != nil {
		return nil, ErrBadMagic
	}
	for i := range payloadMagic {
		if magic[i] != payloadMagic[i] {
			return nil, ErrBadMagic
		}
	}
	version, err := d.u8()
	if err != nil {
		return nil, ErrCorruptPayload
	}
	if version != payloadVersion {
		return nil, ErrBadVersion
	}

	warmup, err := d.u32()
	if err != nil {
		return nil, err
	}

	var opts Options
	bins, err := d.u32()
	if err != nil {
		return nil, err
	}
	kdePoints, err := d.u32()
	if err != nil {
		return nil, err
	}
	alpha, err := d.f64()
	if err != nil {
		return nil, err
	}
	maxLag, err := d.u32()
	if err != nil {
		return nil, err
	}
	opts = Options{Bins: int(bins), KDEPoints: int(kdePoints), Alpha: alpha, MaxLag: int(maxLag)}

	best, err := d.paramSet()
	if err != nil {
		return nil, err
	}
	rates, err := d.floats()
	if err != nil {
		return nil, err
	}
	meanLL, err := d.floats()
	if err != nil {
		return nil, err
	}

	outCount, err := d.u32()
	if err != nil {
		return nil, err
	}
	output := make([]core.ParameterSet, 0, outCount)
	for i := uint32(0); i < outCount; i++ {
		p, err := d.paramSet()
		if err != nil {
			return nil, err
		}
		output = append(output, p)
	}

	chainCount, err := d.u32()
	if err != nil {
		return nil, err
	}
	chains := make([][]core.ParameterSet, 0, chainCount)
	for i := uint32(0); i < chainCount; i++ {
		n, err := d.u32()
		if err != nil {
			return nil, err
		}
		c := make([]core.ParameterSet, 0, n)
		for k := uint32(0); k < n; k++ {
			p, err := d.paramSet()
			if err != nil {
				return nil, err
			}
			c = append(c, p)
		}
		chains = append(chains, c)
	}

	if d.off != len(d.buf) {
		return nil, ErrCorruptPayload
	}

	report, err := Build(chains, output, rates, meanLL, best, int(warmup), &opts)
	if err != nil {
		// Structurally parseable but semantically inconsistent payload.
		return nil, fmt.Errorf("%w: %s", ErrCorruptPayload, err)
	}

	return report, nil
}

// ---------- encoder ----------

type encoder struct {
	buf []byte
}

func (e *encoder) u32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *encoder) f64(v float64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(v))
}

func (e *encoder) floats(v []float64) {
	e.u32(uint32(len(v)))
	for _, f := range v {
		e.f64(f)
	}
}

func (e *encoder) paramSet(p core.ParameterSet) {
	e.floats(p.Values)
	e.f64(p.Fitness)
}

// ---------- decoder ----------

type decoder struct {
	buf []byte
	off int
}

func (d *decoder) bytes(n int) ([]byte, error) {
	if n < 0 || d.off+n > len(d.buf) {
		return nil, ErrCorruptPayload
	}
	b := d.buf[d.off : d.off+n]
	d.off += n

	return b, nil
}

func (d *decoder) u8() (uint8, error) {
	b, err := d.bytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (d *decoder) u32() (uint32, error) {
	b, err := d.bytes(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

func (d *decoder) f64() (float64, error) {
	b, err := d.bytes(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

func (d *decoder) floats() ([]float64, error) {
	n, err := d.u32()
	if err != nil {
		return nil, err
	}
	// Reject counts the remaining buffer cannot possibly satisfy.
	if int(n) > (len(d.buf)-d.off)/8 {
		return nil, ErrCorruptPayload
	}
	out := make([]float64, n)
	for i := range out {
		if out[i], err = d.f64(); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (d *decoder) paramSet() (core.ParameterSet, error) {
	values, err := d.floats()
	if err != nil {
		return core.ParameterSet{}, err
	}
	fitness, err := d.f64()
	if err != nil {
		return core.ParameterSet{}, err
	}

	return core.ParameterSet{Values: values, Fitness: fitness}, nil
}
