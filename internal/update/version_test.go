package update

import "testing"

func Test_CompareVersions(t *testing.T) {
	cases := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "equal", a: "1.2.3", b: "1.2.3", expected: 0},
		{name: "major less", a: "1.9.9", b: "2.0.0", expected: -1},
		{name: "major greater", a: "3.0.0", b: "2.9.9", expected: 1},
		{name: "minor decides", a: "1.5.0", b: "1.10.0", expected: -1},
		{name: "patch decides", a: "1.2.10", b: "1.2.2", expected: 1},
		{name: "numeric not lexical", a: "10.0.0", b: "9.0.0", expected: 1},
		{name: "missing components are zero", a: "1.2", b: "1.2.0", expected: 0},
		{name: "single component", a: "2", b: "1.9.9", expected: 1},
		{name: "v prefix ignored", a: "v1.2.3", b: "1.2.3", expected: 0},
		{name: "prerelease suffix ignored", a: "1.2.3-beta.1", b: "1.2.3", expected: 0},
		{name: "empty is zero", a: "", b: "0.0.1", expected: -1},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareVersions(tt.a, tt.b); got != tt.expected {
				t.Errorf("compareVersions(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}
