package client

import (
	"context"
	"net/http"
	"time"

	"slimtimer/internal/domain"
	"slimtimer/internal/validation"
	"slimtimer/internal/wire"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Session is an authenticated client. It is obtained from Client.Login
// (or Client.ResumeSession) and carries the user id and access token for
// the lifetime of the value; there is no logout transition.
//
// A Session holds no other mutable state, but it is not safe for
// concurrent use without external synchronization, matching the
// single-owner model of the service contract.
type Session struct {
	client         *Client
	userID         int64
	creds          wire.Credentials
	mapper         *domain.Mapper
	taskValidator  *validation.TaskValidator
	entryValidator *validation.TimeEntryValidator
}

func newSession(c *Client, userID int64, accessToken string) *Session {
	return &Session{
		client: c,
		userID: userID,
		creds: wire.Credentials{
			APIKey:      c.apiKey,
			AccessToken: accessToken,
		},
		mapper:         domain.NewMapper(),
		taskValidator:  validation.NewTaskValidator(),
		entryValidator: validation.NewTimeEntryValidator(),
	}
}

// UserID returns the authenticated user's id
func (s *Session) UserID() int64 {
	return s.userID
}

// AccessToken returns the access token obtained at login
func (s *Session) AccessToken() string {
	return s.creds.AccessToken
}

// Task operations

// ListTasks retrieves the user's tasks in server-provided order
func (s *Session) ListTasks(ctx context.Context) ([]domain.Task, error) {
	node, err := s.submitQuery(ctx, http.MethodGet, tasksURL(s.client.baseURL, s.userID), nil, "list tasks")
	if err != nil {
		return nil, err
	}
	wms, err := wire.AsSequence(node, "tasks")
	if err != nil {
		return nil, err
	}
	return s.mapper.Task.FromWireSlice(wms)
}

// CreateTask creates a new task with the given name. The returned task is
// built strictly from the service response, which is the source of truth
// for ids and timestamps.
func (s *Session) CreateTask(ctx context.Context, name string) (*domain.Task, error) {
	cleanedName, err := s.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, err
	}

	params := wire.Mapping{
		"task": map[string]interface{}{
			"name": cleanedName,
		},
	}
	node, err := s.submitBody(ctx, http.MethodPost, tasksURL(s.client.baseURL, s.userID), params, "create task")
	if err != nil {
		return nil, err
	}
	return s.taskFromNode(node)
}

// GetTask retrieves a single task by id
func (s *Session) GetTask(ctx context.Context, taskID int64) (*domain.Task, error) {
	if err := s.taskValidator.ValidateTaskID(taskID); err != nil {
		return nil, err
	}

	node, err := s.submitQuery(ctx, http.MethodGet, taskURL(s.client.baseURL, s.userID, taskID), nil, "get task")
	if err != nil {
		return nil, err
	}
	return s.taskFromNode(node)
}

// CompleteTask marks a task as completed on the given time
func (s *Session) CompleteTask(ctx context.Context, taskID int64, completedOn time.Time) error {
	if err := s.taskValidator.ValidateTaskID(taskID); err != nil {
		return err
	}

	params := wire.Mapping{
		"task": map[string]interface{}{
			"completed_on": wire.FormatTimestamp(completedOn),
		},
	}
	_, err := s.submitBody(ctx, http.MethodPut, taskURL(s.client.baseURL, s.userID, taskID), params, "complete task")
	return err
}

// DeleteTask deletes a task by id
func (s *Session) DeleteTask(ctx context.Context, taskID int64) error {
	if err := s.taskValidator.ValidateTaskID(taskID); err != nil {
		return err
	}

	_, err := s.submitQuery(ctx, http.MethodDelete, taskURL(s.client.baseURL, s.userID, taskID), nil, "delete task")
	return err
}

// Time entry operations

// ListEntries retrieves the user's time entries, optionally bounded by the filter
func (s *Session) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.TimeEntry, error) {
	node, err := s.submitQuery(ctx, http.MethodGet, entriesURL(s.client.baseURL, s.userID), rangeParams(filter), "list entries")
	if err != nil {
		return nil, err
	}
	wms, err := wire.AsSequence(node, "time entries")
	if err != nil {
		return nil, err
	}
	return s.mapper.TimeEntry.FromWireSlice(wms)
}

// ListTaskEntries retrieves the time entries recorded against a single task
func (s *Session) ListTaskEntries(ctx context.Context, taskID int64, filter domain.EntryFilter) ([]domain.TimeEntry, error) {
	if err := s.taskValidator.ValidateTaskID(taskID); err != nil {
		return nil, err
	}

	node, err := s.submitQuery(ctx, http.MethodGet, taskEntriesURL(s.client.baseURL, s.userID, taskID), rangeParams(filter), "list task entries")
	if err != nil {
		return nil, err
	}
	wms, err := wire.AsSequence(node, "time entries")
	if err != nil {
		return nil, err
	}
	return s.mapper.TimeEntry.FromWireSlice(wms)
}

// GetEntry retrieves a single time entry by id
func (s *Session) GetEntry(ctx context.Context, entryID int64) (*domain.TimeEntry, error) {
	if err := s.entryValidator.ValidateEntryID(entryID); err != nil {
		return nil, err
	}

	node, err := s.submitQuery(ctx, http.MethodGet, entryURL(s.client.baseURL, s.userID, entryID), nil, "get entry")
	if err != nil {
		return nil, err
	}
	return s.entryFromNode(node)
}

// CreateEntry records a span of time worked on a task. A nil endTime
// defaults to the current wall-clock time. The duration is computed from
// the bounds and passed through even when negative; the service decides
// whether to accept it.
func (s *Session) CreateEntry(ctx context.Context, taskID int64, startTime time.Time, endTime *time.Time) (*domain.TimeEntry, error) {
	if err := s.entryValidator.ValidateEntryForCreation(taskID, startTime); err != nil {
		return nil, err
	}

	end := timeNow()
	if endTime != nil {
		end = *endTime
	}

	node, err := s.submitBody(ctx, http.MethodPost, entriesURL(s.client.baseURL, s.userID), entryParams(taskID, startTime, end), "create entry")
	if err != nil {
		return nil, err
	}
	return s.entryFromNode(node)
}

// UpdateEntry rewrites an existing time entry with the given bounds
func (s *Session) UpdateEntry(ctx context.Context, entryID, taskID int64, startTime, endTime time.Time) error {
	if err := s.entryValidator.ValidateEntryID(entryID); err != nil {
		return err
	}
	if err := s.entryValidator.ValidateEntryForCreation(taskID, startTime); err != nil {
		return err
	}

	_, err := s.submitBody(ctx, http.MethodPut, entryURL(s.client.baseURL, s.userID, entryID), entryParams(taskID, startTime, endTime), "update entry")
	return err
}

// DeleteEntry deletes a time entry by id
func (s *Session) DeleteEntry(ctx context.Context, entryID int64) error {
	if err := s.entryValidator.ValidateEntryID(entryID); err != nil {
		return err
	}

	_, err := s.submitQuery(ctx, http.MethodDelete, entryURL(s.client.baseURL, s.userID, entryID), nil, "delete entry")
	return err
}

// Helpers

func (s *Session) submitQuery(ctx context.Context, method, url string, params map[string]string, operation string) (interface{}, error) {
	req, err := wire.BuildQueryRequest(ctx, method, url, s.creds, params)
	if err != nil {
		return nil, err
	}
	return wire.Submit(s.client.transport, req, operation)
}

func (s *Session) submitBody(ctx context.Context, method, url string, params wire.Mapping, operation string) (interface{}, error) {
	req, err := wire.BuildBodyRequest(ctx, method, url, s.creds, params)
	if err != nil {
		return nil, err
	}
	return wire.Submit(s.client.transport, req, operation)
}

func (s *Session) taskFromNode(node interface{}) (*domain.Task, error) {
	wm, err := wire.AsMapping(node, "task")
	if err != nil {
		return nil, err
	}
	task, err := s.mapper.Task.FromWire(wm)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *Session) entryFromNode(node interface{}) (*domain.TimeEntry, error) {
	wm, err := wire.AsMapping(node, "time entry")
	if err != nil {
		return nil, err
	}
	entry, err := s.mapper.TimeEntry.FromWire(wm)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// rangeParams renders the optional filter bounds as query parameters,
// omitting any bound that is not supplied
func rangeParams(filter domain.EntryFilter) map[string]string {
	params := make(map[string]string)
	if filter.RangeStart != nil {
		params["range_start"] = wire.FormatTimestamp(*filter.RangeStart)
	}
	if filter.RangeEnd != nil {
		params["range_end"] = wire.FormatTimestamp(*filter.RangeEnd)
	}
	return params
}

// entryParams builds the time_entry body shared by create and update
func entryParams(taskID int64, startTime, endTime time.Time) wire.Mapping {
	return wire.Mapping{
		"time_entry": map[string]interface{}{
			"task_id":             taskID,
			"start_time":          wire.FormatTimestamp(startTime),
			"end_time":            wire.FormatTimestamp(endTime),
			"duration_in_seconds": endTime.Unix() - startTime.Unix(),
		},
	}
}
