// Package migration holds the database schema.
package migration

// Create builds a fresh database.
const Create = `
CREATE TABLE Song (
  id TEXT PRIMARY KEY,
  release_year TEXT,
  title TEXT,
  artist TEXT,
  url TEXT,
  source TEXT,
  lyrics_status TEXT,
  lyrics_checked DATETIME
);

CREATE INDEX song_release_year ON Song (release_year);

CREATE TABLE Run (
  id TEXT PRIMARY KEY,
  command TEXT,
  started DATETIME,
  finished DATETIME
);

CREATE TABLE Parse (
  run TEXT,
  song TEXT,
  result TEXT,
  error TEXT,
  date DATETIME,
  FOREIGN KEY (run) REFERENCES Run(id),
  FOREIGN KEY (song) REFERENCES Song(id),
  PRIMARY KEY (run, song)
);
`
