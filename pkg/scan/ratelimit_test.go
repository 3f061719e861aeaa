package scan

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLimiter struct {
	takes int
}

func (l *countingLimiter) Take() time.Time {
	l.takes++
	return time.Now()
}

func TestRateLimitScannerDelegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	expected := &ScanResult{Input: "97", Prime: true}

	inner := NewMockScanner(ctrl)
	inner.EXPECT().Scan(gomock.Not(gomock.Nil()), gomock.Not(gomock.Nil())).
		Return(expected, nil).Times(3)

	limiter := &countingLimiter{}
	s := NewRateLimitScanner(inner, limiter)

	for i := 0; i < 3; i++ {
		result, err := s.Scan(context.Background(), ScanRequest("97", big.NewInt(97)))
		require.NoError(t, err)
		assert.Equal(t, expected, result)
	}
	assert.Equal(t, 3, limiter.takes)
}
