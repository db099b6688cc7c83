package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageHeight(t *testing.T) {
	tests := []struct {
		name      string
		capturedW float64
		capturedH float64
		pageW     float64
		want      float64
	}{
		{"taller than wide", 1000, 1400, 210, 294},
		{"square capture", 800, 800, 595.28, 595.28},
		{"wider than tall", 2000, 1000, 500, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageHeight(tt.capturedW, tt.capturedH, tt.pageW)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPageHeightPreservesAspect(t *testing.T) {
	capturedW, capturedH := 839.0, 1191.0
	pageW := DocumentPageWidth
	pageH := PageHeight(capturedW, capturedH, pageW)

	assert.InDelta(t, capturedH/capturedW, pageH/pageW, 1e-9)
}

func TestFailureMessagePerKind(t *testing.T) {
	snap := &Job{Kind: KindSnapshot}
	doc := &Job{Kind: KindDocument}

	assert.Equal(t, MsgSnapshotFailed, snap.FailureMessage())
	assert.Equal(t, MsgDocumentFailed, doc.FailureMessage())
}
