package trainer

import "testing"

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		name        string
		amount      float64
		share       float64
		wantTrainer float64
		wantSalon   float64
	}{
		{"thirty percent of 100", 100.00, 30, 30.00, 70.00},
		{"forty percent of 50", 50.00, 40, 20.00, 30.00},
		{"zero share", 80.00, 0, 0.00, 80.00},
		{"full share", 80.00, 100, 80.00, 0.00},
		{"rounding up", 99.99, 33, 33.00, 66.99},
		{"repeating fraction", 10.00, 33.33, 3.33, 6.67},
		{"small amount", 0.01, 50, 0.01, 0.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTrainer, gotSalon := SplitAmount(tt.amount, tt.share)
			if gotTrainer != tt.wantTrainer || gotSalon != tt.wantSalon {
				t.Errorf("SplitAmount(%v, %v) = (%v, %v), want (%v, %v)",
					tt.amount, tt.share, gotTrainer, gotSalon, tt.wantTrainer, tt.wantSalon)
			}
		})
	}
}

// TestSplitAmount_Reconciles verifies trainerShare + salonShare == Round2(amount)
// across a sweep of amounts and share percents.
func TestSplitAmount_Reconciles(t *testing.T) {
	amounts := []float64{0.01, 0.99, 1, 9.99, 49.5, 50, 99.99, 100, 123.45, 1000.01}
	shares := []float64{0, 1, 12.5, 30, 33.33, 40, 50, 66.67, 99, 100}
	for _, a := range amounts {
		for _, s := range shares {
			trainerShare, salonShare := SplitAmount(a, s)
			if got, want := Round2(trainerShare+salonShare), Round2(a); got != want {
				t.Errorf("amount=%v share=%v: shares sum to %v, want %v", a, s, got, want)
			}
		}
	}
}

func TestTrainerValidate(t *testing.T) {
	valid := Trainer{Name: "Ali Kaya", SharePercent: 40}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid trainer rejected: %v", err)
	}

	empty := Trainer{SharePercent: 40}
	if err := empty.Validate(); err != ErrEmptyName {
		t.Errorf("got %v, want ErrEmptyName", err)
	}

	for _, share := range []float64{-1, 100.5, 200} {
		tr := Trainer{Name: "x", SharePercent: share}
		if err := tr.Validate(); err != ErrInvalidShare {
			t.Errorf("share=%v: got %v, want ErrInvalidShare", share, err)
		}
	}
}
