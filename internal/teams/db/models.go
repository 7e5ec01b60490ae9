package db

import (
	"database/sql"
	"time"
)

type Team struct {
	ID              int32
	TeamName        string
	Points          int32
	MysteryQuestion sql.NullInt32
	Deadline        time.Time
}
