package phone

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "already canonical", in: "27825551234", want: "27825551234"},
		{name: "trunk prefix rewritten", in: "0825551234", want: "27825551234"},
		{name: "whatsapp jid suffix", in: "27825551234@s.whatsapp.net", want: "27825551234"},
		{name: "formatted number", in: "+27 (82) 555-1234", want: "27825551234"},
		{name: "trunk prefix with formatting", in: "082 555 1234", want: "27825551234"},
		{name: "short number untouched", in: "0825551", want: "0825551"},
		{name: "eleven digits keeps leading zero", in: "08255512345", want: "08255512345"},
		{name: "suffix stripped before digits", in: "0825551234@g.us", want: "27825551234"},
		{name: "empty input", in: "", wantErr: true},
		{name: "no digits", in: "not-a-number", wantErr: true},
		{name: "only suffix", in: "@s.whatsapp.net", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%q) = %q, expected error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"27825551234",
		"0825551234",
		"+27 82 555 1234",
		"27615215148@s.whatsapp.net",
		"12025550123",
	}

	for _, in := range inputs {
		once, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q) error: %v", in, err)
		}
		twice, err := Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(Normalize(%q)) error: %v", in, err)
		}
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
