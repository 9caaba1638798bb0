package update

import (
	"strconv"
	"strings"
)

// compareVersions compares two dotted version strings component-wise as
// numbers (major.minor.patch). Missing components count as 0, so
// "1.2" == "1.2.0". Pre-release and build suffixes are ignored. String
// comparison is wrong here ("10.0.0" < "9.0.0" lexically) and must never
// be reintroduced.
func compareVersions(a, b string) int {
	pa := versionParts(a)
	pb := versionParts(b)
	for i := 0; i < 3; i++ {
		if pa[i] != pb[i] {
			if pa[i] < pb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func versionParts(v string) [3]int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	var parts [3]int
	for i, s := range strings.SplitN(v, ".", 3) {
		if i >= 3 {
			break
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			break
		}
		parts[i] = n
	}
	return parts
}
