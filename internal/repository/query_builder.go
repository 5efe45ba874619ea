// filepath: internal/repository/query_builder.go
package repository

import (
	"fmt"
	"gamelog/internal/models"
	"gamelog/internal/shared"
	"strings"

	"github.com/Masterminds/squirrel"
)

// sortableColumns maps the sort names callers may use to the column they order by.
// Only identifiers from this map are ever spliced into ORDER BY.
var sortableColumns = map[string]string{
	"id":             "logs.id",
	"date":           "logs.date",
	"rating":         "logs.rating",
	"status":         "logs.status",
	"minutes_played": "logs.minutes_played",
	"created_at":     "logs.created_at",
	"updated_at":     "logs.updated_at",
	"title":          "logged_games.title",
}

var sortDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// logColumns are selected in the order scanLogEntry reads them.
var logColumns = []string{
	"logs.id",
	"logs.created_at",
	"logs.updated_at",
	"logs.date",
	"logs.rating",
	"logs.notes",
	"logs.status",
	"logs.minutes_played",
	"logs.game_id",
	"logged_games.id",
	"logged_games.title",
	"logged_games.cover_id",
}

// logQuery describes a read over the logs table.
type logQuery struct {
	Statuses      []string
	SortColumn    string
	SortDirection string
	Limit         uint64 // 0 means unbounded
}

// selectLogs starts a log read. The join is LEFT so that a log whose game is
// missing surfaces as a row instead of silently disappearing.
func (s *Repository) selectLogs() squirrel.SelectBuilder {
	return s.Builder.Select(logColumns...).
		From("logs").
		LeftJoin("logged_games ON logged_games.id = logs.game_id")
}

// statusFilter validates statuses against the status domain and returns the
// condition restricting a read to them. A nil condition means no filter.
func statusFilter(statuses []string) (squirrel.Sqlizer, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(statuses))
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		if !models.IsValidStatus(status) {
			return nil, fmt.Errorf("%w: unknown status filter: %q", shared.ErrInvalidQuery, status)
		}
		if seen[status] {
			continue
		}
		seen[status] = true
		values = append(values, status)
	}
	return squirrel.Eq{"logs.status": values}, nil
}

// orderClause validates a caller-chosen sort and renders it with logs.id as tiebreaker.
func orderClause(column, direction string) (string, error) {
	col, ok := sortableColumns[strings.ToLower(strings.TrimSpace(column))]
	if !ok {
		return "", fmt.Errorf("%w: invalid sort column: %q", shared.ErrInvalidQuery, column)
	}
	dir, ok := sortDirections[strings.ToLower(strings.TrimSpace(direction))]
	if !ok {
		return "", fmt.Errorf("%w: invalid sort direction: %q", shared.ErrInvalidQuery, direction)
	}
	if col == "logs.id" {
		return fmt.Sprintf("%s %s", col, dir), nil
	}
	return fmt.Sprintf("%s %s, logs.id %s", col, dir, dir), nil
}

// buildLogsQuery renders q to SQL text and arguments. It touches no connection,
// so an invalid query is rejected before any lock is taken.
func (s *Repository) buildLogsQuery(q logQuery) (string, []interface{}, error) {
	filter, err := statusFilter(q.Statuses)
	if err != nil {
		return "", nil, err
	}
	order, err := orderClause(q.SortColumn, q.SortDirection)
	if err != nil {
		return "", nil, err
	}

	sb := s.selectLogs()
	if filter != nil {
		sb = sb.Where(filter)
	}
	sb = sb.OrderBy(order)
	if q.Limit > 0 {
		sb = sb.Limit(q.Limit)
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", shared.ErrInvalidQuery, err)
	}
	return query, args, nil
}
