package components

import "testing"

func TestSignCooling(t *testing.T) {
	tests := []struct {
		name     string
		sign     Sign
		now      float64
		cooldown float64
		want     bool
	}{
		{"never collided", Sign{}, 0, 300, false},
		{"just collided", Sign{LastCollision: 100, Collided: true}, 100, 300, true},
		{"at boundary", Sign{LastCollision: 100, Collided: true}, 400, 300, true},
		{"past boundary", Sign{LastCollision: 100, Collided: true}, 400.5, 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sign.Cooling(tt.now, tt.cooldown); got != tt.want {
				t.Errorf("Cooling(%v, %v) = %v, want %v", tt.now, tt.cooldown, got, tt.want)
			}
		})
	}
}

func TestMarkCollision(t *testing.T) {
	var s Sign
	s.MarkCollision(1234)
	if !s.Collided || s.LastCollision != 1234 {
		t.Errorf("got %+v, want collided at 1234", s)
	}
}
