package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID          int64     `db:"id"`
	PlayedAt    time.Time `db:"played_at"`
	HomeTeam    string    `db:"home_team"`
	AwayTeam    string    `db:"away_team"`
	HomeGoals   int       `db:"home_goals"`
	AwayGoals   int       `db:"away_goals"`
	Competition string    `db:"competition"`
	Season      int       `db:"season"`
	Round       string    `db:"round"`
	Venue       string    `db:"venue"`
}

type playerTableModel struct {
	ID          int64          `db:"id"`
	SourceID    int64          `db:"source_id"`
	Name        string         `db:"name"`
	Nationality string         `db:"nationality"`
	Club        sql.NullString `db:"club"`
	Rating      sql.NullInt64  `db:"rating"`
	Position    string         `db:"position"`
	Attributes  []byte         `db:"attributes"`
}

var matchCopyColumns = []string{
	"played_at", "home_team", "away_team", "home_goals", "away_goals",
	"competition", "season", "round", "venue",
}

var playerCopyColumns = []string{
	"source_id", "name", "nationality", "club", "rating", "position", "attributes",
}
