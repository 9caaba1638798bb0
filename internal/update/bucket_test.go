package update

import (
	"fmt"
	"testing"
)

func Test_BucketDeterminism(t *testing.T) {
	for i := 0; i < 50; i++ {
		deviceID := fmt.Sprintf("device-%d", i)
		first := Bucket(deviceID)
		for j := 0; j < 10; j++ {
			if got := Bucket(deviceID); got != first {
				t.Fatalf("bucket for %s changed between calls: %d vs %d", deviceID, first, got)
			}
		}
		if first < 0 || first >= 100 {
			t.Fatalf("bucket for %s out of range: %d", deviceID, first)
		}
	}
}

// A device included at percentage p must stay included at any higher
// percentage, so raising a rollout never un-serves a device.
func Test_RolloutMonotonicity(t *testing.T) {
	for i := 0; i < 200; i++ {
		deviceID := fmt.Sprintf("device-%d", i)
		included := false
		for p := 0; p <= 100; p++ {
			now := inRollout(deviceID, p)
			if included && !now {
				t.Fatalf("device %s excluded at %d%% after being included at a lower percentage", deviceID, p)
			}
			if now {
				included = true
			}
		}
		if !included {
			t.Fatalf("device %s never included even at 100%%", deviceID)
		}
	}
}

func Test_RolloutBoundaries(t *testing.T) {
	for i := 0; i < 200; i++ {
		deviceID := fmt.Sprintf("device-%d", i)
		if inRollout(deviceID, 0) {
			t.Fatalf("device %s included at 0%%", deviceID)
		}
		if !inRollout(deviceID, 100) {
			t.Fatalf("device %s excluded at 100%%", deviceID)
		}
	}
}
