package results_test

import (
	"testing"

	"github.com/probelab/mcstat/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCodec_RoundTrip: Decode(Encode(x)) reproduces every field exactly,
// nested chain histories included.
func TestCodec_RoundTrip(t *testing.T) {
	r := fixtureReport(t)

	payload := r.Encode()
	got, err := results.Decode(payload)
	require.NoError(t, err)

	assert.Equal(t, r.Options(), got.Options())
	assert.Equal(t, r.Warmup(), got.Warmup())
	assert.Equal(t, r.AcceptanceRates(), got.AcceptanceRates())
	assert.Equal(t, r.MeanLogLikelihood(), got.MeanLogLikelihood())
	assert.True(t, r.MAP().Equal(got.MAP()), "MAP must survive to full precision")

	wantOut, gotOut := r.Output(), got.Output()
	require.Equal(t, len(wantOut), len(gotOut))
	for i := range wantOut {
		assert.True(t, wantOut[i].Equal(gotOut[i]), "output sample %d differs", i)
	}

	wantChains, gotChains := r.Chains(), got.Chains()
	require.Equal(t, len(wantChains), len(gotChains))
	for i := range wantChains {
		require.Equal(t, len(wantChains[i]), len(gotChains[i]), "chain %d length", i)
		for k := range wantChains[i] {
			assert.True(t, wantChains[i][k].Equal(gotChains[i][k]),
				"chain %d entry %d differs", i, k)
		}
	}

	// Summaries are rebuilt deterministically from identical bits.
	require.Equal(t, r.NumParameters(), got.NumParameters())
	for j := 0; j < r.NumParameters(); j++ {
		assert.Equal(t, r.Parameter(j), got.Parameter(j))
	}
}

// TestCodec_RoundTripTwice: serialization is stable.
func TestCodec_RoundTripTwice(t *testing.T) {
	r := fixtureReport(t)

	once := r.Encode()
	decoded, err := results.Decode(once)
	require.NoError(t, err)

	assert.Equal(t, once, decoded.Encode(), "re-encoding must be byte-identical")
}

// TestDecode_BadMagic rejects foreign payloads outright.
func TestDecode_BadMagic(t *testing.T) {
	_, err := results.Decode([]byte("not a report payload"))
	assert.ErrorIs(t, err, results.ErrBadMagic)

	_, err = results.Decode(nil)
	assert.ErrorIs(t, err, results.ErrBadMagic)
}

// TestDecode_BadVersion rejects unknown layout versions.
func TestDecode_BadVersion(t *testing.T) {
	payload := fixtureReport(t).Encode()
	payload[4] = 99

	_, err := results.Decode(payload)
	assert.ErrorIs(t, err, results.ErrBadVersion)
}

// TestDecode_Truncated: every truncation point yields an error, never a
// partially populated report.
func TestDecode_Truncated(t *testing.T) {
	payload := fixtureReport(t).Encode()

	for _, cut := range []int{5, 9, 25, 60, len(payload) / 2, len(payload) - 1} {
		_, err := results.Decode(payload[:cut])
		assert.Error(t, err, "truncation at %d must fail", cut)
	}
}

// TestDecode_TrailingGarbage: extra bytes after the payload are rejected.
func TestDecode_TrailingGarbage(t *testing.T) {
	payload := fixtureReport(t).Encode()
	payload = append(payload, 0xFF)

	_, err := results.Decode(payload)
	assert.ErrorIs(t, err, results.ErrCorruptPayload)
}

// TestDecode_LyingLengthPrefix: a length prefix larger than the buffer is
// caught before allocation.
func TestDecode_LyingLengthPrefix(t *testing.T) {
	payload := fixtureReport(t).Encode()
	// Overwrite the acceptance-rates length prefix (first array after the
	// fixed header + MAP paramset) with a huge count.
	// Header: 4 magic + 1 version + 4 warmup + 4 bins + 4 kde + 8 alpha + 4 lag = 29.
	// MAP paramset: 4 + 2·8 + 8 = 28. Rates length lives at offset 57.
	payload[57] = 0xFF
	payload[58] = 0xFF
	payload[59] = 0xFF
	payload[60] = 0xFF

	_, err := results.Decode(payload)
	assert.ErrorIs(t, err, results.ErrCorruptPayload)
}
