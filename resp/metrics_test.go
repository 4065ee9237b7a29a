/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/metrics_test.go
*/
package resp

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsNilIsNoOp(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeParsed(3)
		m.observeIncomplete()
		m.observeParseError("Format")
		m.observeWritten(3)
		m.observeDowngrade()
	})
}

func TestMetricsWiredIntoParserAndWriter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	p := NewDefaultParser()
	p.Metrics = m
	v, ok, err := p.TryParseBytes([]byte("+OK\r\n"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FramesParsed))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.BytesConsumed))

	_, incompleteOK, incompleteErr := p.TryParseBytes([]byte("$5\r\nhel"))
	require.NoError(t, incompleteErr)
	require.False(t, incompleteOK)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.IncompleteReads))

	_, _, parseErr := p.TryParseBytes([]byte("?nope\r\n"))
	require.Error(t, parseErr)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ParseErrors.WithLabelValues("RespTypeNotImplemented")))

	sink := NewBufferSink(nil)
	w := NewWriter(sink, RESP2)
	w.Metrics = m
	require.NoError(t, w.WriteValue(v))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FramesWritten))

	boolVal, _ := Create(TagBoolean, []byte("t"))
	require.NoError(t, w.WriteValue(boolVal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DowngradesWritten))
}
