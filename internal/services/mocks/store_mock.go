// filepath: internal/services/mocks/store_mock.go
package mocks

import (
	"gamelog/internal/models"
	"gamelog/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockLogStore is a mock implementation of services.LogStore
type MockLogStore struct {
	mock.Mock
}

var _ services.LogStore = (*MockLogStore)(nil)

func (m *MockLogStore) GetDashboardStatistics(start, end string) (models.DashboardStatistics, error) {
	args := m.Called(start, end)
	return args.Get(0).(models.DashboardStatistics), args.Error(1)
}

func (m *MockLogStore) GetRecentLogs(limit int, statuses []string) ([]models.LogEntry, error) {
	args := m.Called(limit, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LogEntry), args.Error(1)
}

func (m *MockLogStore) GetLogs(sortColumn, sortDirection string, statuses []string) ([]models.LogEntry, error) {
	args := m.Called(sortColumn, sortDirection, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LogEntry), args.Error(1)
}

func (m *MockLogStore) GetLogByID(id int64) (models.LogEntry, error) {
	args := m.Called(id)
	return args.Get(0).(models.LogEntry), args.Error(1)
}

func (m *MockLogStore) AddLog(input models.LogEntryInput) (int64, error) {
	args := m.Called(input)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLogStore) UpdateLog(update models.LogEntryUpdate) (int64, error) {
	args := m.Called(update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLogStore) DeleteLog(id int64) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLogStore) AddExecutableDetails(details models.ExecutableDetails) (int64, error) {
	args := m.Called(details)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLogStore) GetExecutableDetails(name string) (models.ExecutableDetails, error) {
	args := m.Called(name)
	return args.Get(0).(models.ExecutableDetails), args.Error(1)
}

func (m *MockLogStore) GetLoggedGame(id int64) (models.Game, error) {
	args := m.Called(id)
	return args.Get(0).(models.Game), args.Error(1)
}

func (m *MockLogStore) Backup(dir string) (models.BackupReport, error) {
	args := m.Called(dir)
	return args.Get(0).(models.BackupReport), args.Error(1)
}

func (m *MockLogStore) RepairOrphanedGames(dryRun bool) ([]int64, error) {
	args := m.Called(dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
