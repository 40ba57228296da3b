package updater

import "testing"

func TestParseSemver(t *testing.T) {
	tests := []struct {
		in      string
		want    Semver
		wantErr bool
	}{
		{in: "1.2.3", want: Semver{1, 2, 3, ""}},
		{in: "v0.10.0", want: Semver{0, 10, 0, ""}},
		{in: "2.0.0-beta.1+abc", want: Semver{2, 0, 0, "beta.1"}},
		{in: " 1.0.0 ", want: Semver{1, 0, 0, ""}},
		{in: "dev", wantErr: true},
		{in: "1.2", wantErr: true},
		{in: "1.x.3", wantErr: true},
		{in: "1.-2.3", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseSemver(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSemver(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSemver(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSemver(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"1.2.0", "1.1.9", 1},
		{"2.0.0", "10.0.0", -1},
		{"1.0.0-rc.1", "1.0.0", -1},
		{"1.0.0", "1.0.0-rc.1", 1},
		{"1.0.0-alpha", "1.0.0-beta", -1},
	}
	for _, tt := range tests {
		a, _ := ParseSemver(tt.a)
		b, _ := ParseSemver(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSemverString(t *testing.T) {
	if got := (Semver{1, 2, 3, "rc.1"}).String(); got != "1.2.3-rc.1" {
		t.Errorf("String() = %q", got)
	}
}
