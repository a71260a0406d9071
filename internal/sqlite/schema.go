package sqlite

// Schema DDL. seq records insertion order; hero_id is the store-assigned ID.
const (
	createHeroes = `CREATE TABLE IF NOT EXISTS heroes (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    hero_id INTEGER NOT NULL UNIQUE,
    name TEXT NOT NULL,
    power TEXT NOT NULL,
    description TEXT NOT NULL
);`

	idxHeroesName = `CREATE INDEX IF NOT EXISTS idx_heroes_name ON heroes(name);`
)

// schemaDDL lists all statements executed when a table is opened.
var schemaDDL = []string{
	createHeroes,
	idxHeroesName,
}
