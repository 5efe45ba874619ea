// filepath: internal/repository/query_builder_test.go
package repository

import (
	"errors"
	"gamelog/internal/shared"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilderRepo() *Repository {
	return &Repository{Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)}
}

func TestBuildLogsQuery(t *testing.T) {
	repo := newBuilderRepo()

	tests := []struct {
		name         string
		q            logQuery
		wantWhere    string
		wantOrder    string
		wantLimit    string
		wantArgs     []interface{}
		wantNoFilter bool
	}{
		{
			name:         "no filter",
			q:            logQuery{SortColumn: "date", SortDirection: "desc"},
			wantOrder:    "ORDER BY logs.date DESC, logs.id DESC",
			wantNoFilter: true,
		},
		{
			name:      "filter is bound",
			q:         logQuery{Statuses: []string{"playing", "completed"}, SortColumn: "title", SortDirection: "ASC"},
			wantWhere: "WHERE logs.status IN (?,?)",
			wantOrder: "ORDER BY logged_games.title ASC, logs.id ASC",
			wantArgs:  []interface{}{"playing", "completed"},
		},
		{
			name:      "duplicate statuses collapse",
			q:         logQuery{Statuses: []string{"backlog", "backlog"}, SortColumn: "id", SortDirection: "Desc", Limit: 5},
			wantWhere: "WHERE logs.status IN (?)",
			wantOrder: "ORDER BY logs.id DESC",
			wantLimit: "LIMIT 5",
			wantArgs:  []interface{}{"backlog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := repo.buildLogsQuery(tt.q)
			require.NoError(t, err)

			assert.Contains(t, query, "LEFT JOIN logged_games ON logged_games.id = logs.game_id")
			assert.Contains(t, query, tt.wantOrder)
			if tt.wantNoFilter {
				assert.NotContains(t, query, "WHERE")
				assert.Empty(t, args)
			} else {
				assert.Contains(t, query, tt.wantWhere)
				assert.Equal(t, tt.wantArgs, args)
			}
			if tt.wantLimit != "" {
				assert.Contains(t, query, tt.wantLimit)
			} else {
				assert.NotContains(t, query, "LIMIT")
			}
		})
	}
}

func TestBuildLogsQuery_Rejects(t *testing.T) {
	repo := newBuilderRepo()

	tests := []struct {
		name string
		q    logQuery
	}{
		{"unknown column", logQuery{SortColumn: "password", SortDirection: "asc"}},
		{"injected column", logQuery{SortColumn: "date; DROP TABLE logs", SortDirection: "asc"}},
		{"unknown direction", logQuery{SortColumn: "date", SortDirection: "sideways"}},
		{"empty direction", logQuery{SortColumn: "date"}},
		{"unknown status", logQuery{Statuses: []string{"playing", "finished"}, SortColumn: "date", SortDirection: "asc"}},
		{"injected status", logQuery{Statuses: []string{"playing') OR 1=1 --"}, SortColumn: "date", SortDirection: "asc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := repo.buildLogsQuery(tt.q)
			assert.True(t, errors.Is(err, shared.ErrInvalidQuery), "got %v", err)
		})
	}
}

func TestStatusFilter_EmptyIsNoFilter(t *testing.T) {
	filter, err := statusFilter(nil)
	require.NoError(t, err)
	assert.Nil(t, filter)

	filter, err = statusFilter([]string{})
	require.NoError(t, err)
	assert.Nil(t, filter)
}
