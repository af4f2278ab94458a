package domain

import "testing"

func TestOrderResultIsOpen(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{OrderStatusNew, true},
		{OrderStatusPartiallyFilled, true},
		{OrderStatusFilled, false},
		{OrderStatusCanceled, false},
		{OrderStatusRejected, false},
		{OrderStatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			r := &OrderResult{Status: tt.status}
			if got := r.IsOpen(); got != tt.want {
				t.Errorf("IsOpen() with status %s = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
