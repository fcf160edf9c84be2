package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// InsertClip inserts a new clip row and returns its ID.
func InsertClip(db *sql.DB, c Clip) (int64, error) {
	result, err := db.Exec(
		`INSERT INTO clips (title, show_title, thumbnail, emotion, category, video_url, start_time, end_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Title, c.ShowTitle, c.Thumbnail, c.Emotion, c.Category, c.VideoURL, c.StartTime, c.EndTime,
	)
	if err != nil {
		return 0, fmt.Errorf("insert clip: %w", err)
	}
	return result.LastInsertId()
}

// ListClips returns all clips, newest first.
func ListClips(db *sql.DB) ([]Clip, error) {
	rows, err := db.Query(
		`SELECT id, title, show_title, thumbnail, emotion, category, video_url, start_time, end_time, created_at
		 FROM clips ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query clips: %w", err)
	}
	defer rows.Close()

	return scanClips(rows)
}

// FilterClips returns clips whose title contains the given substring,
// case-insensitively, newest first. An empty filter returns everything.
func FilterClips(db *sql.DB, filter string) ([]Clip, error) {
	if strings.TrimSpace(filter) == "" {
		return ListClips(db)
	}

	pattern := "%" + strings.ToLower(filter) + "%"
	rows, err := db.Query(
		`SELECT id, title, show_title, thumbnail, emotion, category, video_url, start_time, end_time, created_at
		 FROM clips WHERE LOWER(title) LIKE ? ORDER BY created_at DESC, id DESC`,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("filter clips: %w", err)
	}
	defer rows.Close()

	return scanClips(rows)
}

// GetClip returns the clip with the given ID, or sql.ErrNoRows.
func GetClip(db *sql.DB, id int64) (*Clip, error) {
	var c Clip
	var showTitle, thumbnail, emotion, category sql.NullString
	err := db.QueryRow(
		`SELECT id, title, show_title, thumbnail, emotion, category, video_url, start_time, end_time, created_at
		 FROM clips WHERE id = ?`,
		id,
	).Scan(&c.ID, &c.Title, &showTitle, &thumbnail, &emotion, &category, &c.VideoURL, &c.StartTime, &c.EndTime, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.ShowTitle = showTitle.String
	c.Thumbnail = thumbnail.String
	c.Emotion = emotion.String
	c.Category = category.String
	return &c, nil
}

// DeleteClip removes the clip with the given ID.
func DeleteClip(db *sql.DB, id int64) error {
	_, err := db.Exec(`DELETE FROM clips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete clip: %w", err)
	}
	return nil
}

// scanClips reads all rows from a clips query.
func scanClips(rows *sql.Rows) ([]Clip, error) {
	var clips []Clip
	for rows.Next() {
		var c Clip
		var showTitle, thumbnail, emotion, category sql.NullString
		if err := rows.Scan(&c.ID, &c.Title, &showTitle, &thumbnail, &emotion, &category,
			&c.VideoURL, &c.StartTime, &c.EndTime, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan clip: %w", err)
		}
		c.ShowTitle = showTitle.String
		c.Thumbnail = thumbnail.String
		c.Emotion = emotion.String
		c.Category = category.String
		clips = append(clips, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clips: %w", err)
	}
	return clips, nil
}
