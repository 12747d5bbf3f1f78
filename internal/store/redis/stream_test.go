package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStabilityDeadlineKey_NamespacedPerTarget(t *testing.T) {
	assert.Equal(t, "adsc:stability:deadline:1", stabilityDeadlineKey(1))
	assert.NotEqual(t, stabilityDeadlineKey(1), stabilityDeadlineKey(-2))
}
