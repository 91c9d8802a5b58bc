package script

import "testing"

func TestDetect(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Script
	}{
		{"latin only", "House 12, Road 5, Mirpur, Dhaka", Latin},
		{"bangla only", "বাসা ১২, রোড ৫, মিরপুর, ঢাকা", Bangla},
		{"mixed", "House 12, মিরপুর রোড এলাকা, Dhaka", Mixed},
		{"digits and punctuation only", "12, 5 - 1216", Unknown},
		{"empty", "", Unknown},
		{"mostly latin with one bangla word", "House 12 Road 5 Mirpur Dhaka Bangladesh ঢাকা", Latin},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := Detect(tc.input)
			if d.Script != tc.want {
				t.Errorf("Detect(%q) = %s (bangla=%.2f latin=%.2f), want %s",
					tc.input, d.Script, d.BanglaRatio, d.LatinRatio, tc.want)
			}
		})
	}
}

func TestDetect_Ratios(t *testing.T) {
	d := Detect("abc অআই")
	if d.BanglaRatio+d.LatinRatio < 0.99 {
		t.Errorf("ratios should sum to 1, got %.2f", d.BanglaRatio+d.LatinRatio)
	}
	if !d.IsMixed() {
		t.Errorf("half bangla half latin should be mixed, got %s", d.Script)
	}
}
