package srs

import (
	"database/sql"
	"fmt"
)

const wordQuery = `
	SELECT dictForm, secondary, pos, language, mod, statusMod,
	       del, knownStatus, hasCard, tracked
	FROM WordList
	WHERE language = ?`

// WordsForLanguage loads every word record for the given language code,
// deleted rows included. Classification decides what to do with them.
func WordsForLanguage(db *sql.DB, language string) ([]Word, error) {
	rows, err := db.Query(wordQuery, language)
	if err != nil {
		return nil, fmt.Errorf("querying word list: %w", err)
	}
	defer rows.Close()

	var words []Word
	for rows.Next() {
		var (
			w                  Word
			status             string
			del, card, tracked int
		)
		if err := rows.Scan(
			&w.DictForm, &w.Secondary, &w.Pos, &w.Language,
			&w.Mod, &w.StatusMod, &del, &status, &card, &tracked,
		); err != nil {
			return nil, fmt.Errorf("scanning word: %w", err)
		}
		w.Del = del != 0
		w.Status = KnownStatus(status)
		w.HasCard = card != 0
		w.Tracked = tracked != 0
		words = append(words, w)
	}

	return words, rows.Err()
}

// Languages returns the distinct language codes present in the word list.
func Languages(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT language FROM WordList ORDER BY language`)
	if err != nil {
		return nil, fmt.Errorf("querying languages: %w", err)
	}
	defer rows.Close()

	var langs []string
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, fmt.Errorf("scanning language: %w", err)
		}
		langs = append(langs, lang)
	}

	return langs, rows.Err()
}
