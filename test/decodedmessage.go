package test_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wkhan/candbc"
)

// AssertDecodedMessage compares two DecodedMessage values signal-by-signal,
// tolerating delta difference in physical values. This mirrors golden-frame
// decode tests that want float tolerance without hand-rolling a loop in
// every test.
func AssertDecodedMessage(t *testing.T, expect candbc.DecodedMessage, actual candbc.DecodedMessage, delta float64) {
	assert.Equal(t, expect.ID, actual.ID)
	assert.Equal(t, expect.Name, actual.Name)
	assert.Len(t, actual.Signals, len(expect.Signals))

	for i, name := range actual.Signals {
		expectedValue, ok := expect.ValueAt(name)
		if !ok {
			t.Errorf("actual decoded message contains signal %q not present in expected message", name)
			continue
		}
		assert.InDelta(t, expectedValue, actual.Values[i], delta, "signal %q: got %v, want %v", name, actual.Values[i], expectedValue)
	}
}
