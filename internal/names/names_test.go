package names

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"suffix and punctuation", "Michael Smith Jr.", "michael smith"},
		{"senior suffix", "Odell Beckham Sr", "odell beckham"},
		{"roman numeral", "Marvin Harrison III", "marvin harrison"},
		{"apostrophe", "Ja'Marr Chase", "jamarr chase"},
		{"hyphen", "Amon-Ra St. Brown", "amonra st brown"},
		{"extra whitespace", "  Justin   Jefferson ", "justin jefferson"},
		{"already normalized", "justin jefferson", "justin jefferson"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Michael Smith Jr.", "Ja'Marr Chase", "DEN Defense"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestDefenseName(t *testing.T) {
	if got := DefenseName("DEN"); got != "DEN Defense" {
		t.Fatalf("DefenseName(DEN) = %q", got)
	}
}
