package update

import "hash/fnv"

// Bucket maps a device ID into [0,100). FNV-1a keeps the mapping pure and
// stable across processes, so a device's rollout inclusion is reproducible
// and raising the percentage never un-serves an included device.
func Bucket(deviceID string) int {
	h := fnv.New32a()
	h.Write([]byte(deviceID))
	return int(h.Sum32() % 100)
}

func inRollout(deviceID string, percentage int) bool {
	if percentage >= 100 {
		return true
	}
	if percentage <= 0 {
		return false
	}
	return Bucket(deviceID) < percentage
}
