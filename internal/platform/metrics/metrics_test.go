// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/myflix/internal/platform/metrics"
)

/*
TestOutcome checks label classification.
*/
func TestOutcome(t *testing.T) {
	client := errors.New("client")
	isClient := func(err error) bool { return errors.Is(err, client) }

	assert.Equal(t, metrics.OutcomeSuccess, metrics.Outcome(nil, isClient))
	assert.Equal(t, metrics.OutcomeFailure, metrics.Outcome(client, isClient))
	assert.Equal(t, metrics.OutcomeError, metrics.Outcome(errors.New("db down"), isClient))
}

/*
TestFavoriteMutations_Increments verifies label wiring on the counter.
*/
func TestFavoriteMutations_Increments(t *testing.T) {
	counter := metrics.FavoriteMutations.WithLabelValues("add", metrics.OutcomeSuccess)
	before := testutil.ToFloat64(counter)

	counter.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
