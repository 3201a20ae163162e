package entity

import "testing"

func f(v float64) *float64 { return &v }

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name    string
		base    *float64
		percent *float64
		amount  *float64
		want    *float64
	}{
		{name: "percent discount", base: f(100), percent: f(20), want: f(80)},
		{name: "flat discount", base: f(100), amount: f(30), want: f(70)},
		{name: "no discount", base: f(100), want: f(100)},
		{name: "nil base", percent: f(20), want: nil},
		{name: "flat discount clamps at zero", base: f(100), amount: f(150), want: f(0)},
		{name: "percent wins when both set", base: f(100), percent: f(10), amount: f(50), want: f(90)},
		{name: "zero percent falls through to amount", base: f(100), percent: f(0), amount: f(25), want: f(75)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountedPrice(tt.base, tt.percent, tt.amount)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Fatalf("got %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestEffectivePrice(t *testing.T) {
	tour := &Tour{BasePrice: f(200), DiscountPercent: f(50)}
	got := tour.EffectivePrice()
	if got == nil || *got != 100 {
		t.Fatalf("got %v, want 100", got)
	}

	empty := &Tour{}
	if empty.EffectivePrice() != nil {
		t.Fatal("expected nil effective price without a base price")
	}
}
