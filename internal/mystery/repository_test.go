package mystery

import (
	"database/sql"
	"testing"

	"github.com/siammpl/arena/internal/mystery/db"
)

func TestAllocationConflict(t *testing.T) {
	tests := []struct {
		name  string
		alloc db.GetTeamAllocationRow
		want  error
	}{
		{
			name: "holding a question",
			alloc: db.GetTeamAllocationRow{
				MysteryQuestion: sql.NullInt32{Int32: 7, Valid: true},
				Points:          90,
			},
			want: ErrAlreadyAllocated,
		},
		{
			name: "short on points",
			alloc: db.GetTeamAllocationRow{
				MysteryQuestion: sql.NullInt32{},
				Points:          10,
			},
			want: ErrInsufficientPoints,
		},
		{
			name: "holding and short on points",
			alloc: db.GetTeamAllocationRow{
				MysteryQuestion: sql.NullInt32{Int32: 7, Valid: true},
				Points:          0,
			},
			want: ErrAlreadyAllocated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allocationConflict(tt.alloc); got != tt.want {
				t.Errorf("allocationConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}
