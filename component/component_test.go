package component

import "testing"

func TestHealth_Healthy(t *testing.T) {
	tests := []struct {
		status HealthStatus
		want   bool
	}{
		{StatusHealthy, true},
		{StatusDegraded, false},
		{StatusUnhealthy, false},
		{"", false},
	}
	for _, tt := range tests {
		if got := (Health{Status: tt.status}).Healthy(); got != tt.want {
			t.Errorf("Health{%q}.Healthy() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
