package main

import (
	"database/sql"
	"fmt"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Downloads every playthrough uploaded by the game (built with the
// http_enabled tag) into one folder per user, in the current directory.
// The database is configured through MINIPONG_DBUSER, MINIPONG_DBPASSWORD,
// MINIPONG_DBADDR and MINIPONG_DBNAME.
func main() {
	DownloadRecordings()
}

type dbRow struct {
	startMoment       time.Time
	endMoment         time.Time
	user              string
	releaseVersion    int64
	simulationVersion int64
	inputVersion      int64
	id                uuid.UUID
	data              []byte
}

func DownloadRecordings() {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { Check(db.Close()) }(db)

	rows, err := db.Query("SELECT " +
		"start_moment, " +
		"COALESCE(end_moment, start_moment), " +
		"user, " +
		"release_version, " +
		"simulation_version, " +
		"input_version, " +
		"id, " +
		"COALESCE(playthrough, '') " +
		"FROM playthroughs")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	var dbRows []dbRow
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.startMoment, &row.endMoment, &row.user,
			&row.releaseVersion, &row.simulationVersion, &row.inputVersion,
			&row.id, &row.data)
		Check(err)
		dbRows = append(dbRows, row)
	}
	Check(rows.Err())

	nWritten := 0
	for i := range dbRows {
		// A row without data is a match that registered its id but never
		// uploaded a playthrough, usually because the game crashed.
		if len(dbRows[i].data) == 0 {
			slog.Warn("playthrough without data", "id", dbRows[i].id,
				"user", dbRows[i].user)
			continue
		}
		WriteFile(PlaythroughFilename(dbRows[i]), dbRows[i].data)
		nWritten++
	}
	slog.Info("download finished", "rows", len(dbRows), "written", nWritten)
}

// PlaythroughFilename puts the playthrough in the user's folder and uses an
// extension that includes both the simulation and the input versions, e.g.
// 20261019-153000.minipong-1-1.
func PlaythroughFilename(row dbRow) string {
	dir := row.user
	MakeDir(dir)
	m := row.startMoment
	return filepath.Join(dir, fmt.Sprintf(
		"%d%02d%02d-%02d%02d%02d.minipong-%d-%d", m.Year(), m.Month(),
		m.Day(), m.Hour(), m.Minute(), m.Second(),
		row.simulationVersion, row.inputVersion))
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("MINIPONG_DBUSER"),
		Passwd:               os.Getenv("MINIPONG_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("MINIPONG_DBADDR"),
		DBName:               os.Getenv("MINIPONG_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

func MakeDir(name string) {
	err := os.MkdirAll(name, 0755)
	Check(err)
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
