package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeReport struct {
	Statistic string
	Scores    []float64
}

func TestCodec_RoundTrip(t *testing.T) {
	for typ, newFn := range NewCodecFuncMap {
		var buf bytes.Buffer
		cc := newFn(&buf)

		header := &Header{Tool: "draid", Statistic: "Mean", Faults: 1, Entries: 2}
		body := &fakeReport{Statistic: "Mean", Scores: []float64{3.25, 4.5}}
		require.NoError(t, cc.WriteHeader(header), typ)
		require.NoError(t, cc.WriteBody(body), typ)

		rc := newFn(&buf)
		gotHeader := &Header{}
		gotBody := &fakeReport{}
		require.NoError(t, rc.ReadHeader(gotHeader), typ)
		require.NoError(t, rc.ReadBody(gotBody), typ)
		require.Equal(t, header, gotHeader, typ)
		require.Equal(t, body, gotBody, typ)
	}
}
