package device

import (
	"errors"
	"testing"
)

func TestResultsCode(t *testing.T) {
	errWrite := errors.New("short write")

	tests := []struct {
		name    string
		results Results
		want    int
	}{
		{
			name:    "all applied",
			results: Results{{Outcome: Applied}, {Outcome: Applied}, {Outcome: Applied}},
			want:    ExitOK,
		},
		{
			name:    "single device applied",
			results: Results{{Outcome: Applied}},
			want:    ExitOK,
		},
		{
			name:    "absence only is degraded",
			results: Results{{Outcome: Applied}, {Outcome: NotFound}, {Outcome: Applied}},
			want:    ExitDegraded,
		},
		{
			name: "transport error dominates absence",
			results: Results{
				{Outcome: Applied},
				{Outcome: NotFound},
				{Outcome: TransportError, Err: errWrite},
			},
			want: ExitFailure,
		},
		{
			name:    "permission denied is a failure",
			results: Results{{Outcome: PermissionDenied}, {Outcome: Applied}, {Outcome: Applied}},
			want:    ExitFailure,
		},
		{
			name:    "all absent",
			results: Results{{Outcome: NotFound}, {Outcome: NotFound}, {Outcome: NotFound}},
			want:    ExitDegraded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.results.Code(); got != tt.want {
				t.Fatalf("Code() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResultsSummary(t *testing.T) {
	tests := []struct {
		name    string
		results Results
		want    string
	}{
		{
			name:    "fully applied",
			results: Results{{Outcome: Applied}, {Outcome: Applied}},
			want:    "fully applied",
		},
		{
			name:    "partially applied",
			results: Results{{Outcome: Applied}, {Outcome: NotFound}},
			want:    "partially applied",
		},
		{
			name:    "failed",
			results: Results{{Outcome: Applied}, {Outcome: TransportError}},
			want:    "failed",
		},
		{
			name:    "permission failure",
			results: Results{{Outcome: PermissionDenied}},
			want:    "failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.results.Summary(); got != tt.want {
				t.Fatalf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
