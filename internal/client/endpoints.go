package client

import (
	"fmt"
)

// Wire endpoints of the SlimTimer service, relative to the base URL.

func loginURL(base string) string {
	return fmt.Sprintf("%s/users/token", base)
}

func tasksURL(base string, userID int64) string {
	return fmt.Sprintf("%s/users/%d/tasks", base, userID)
}

func taskURL(base string, userID, taskID int64) string {
	return fmt.Sprintf("%s/users/%d/tasks/%d", base, userID, taskID)
}

func taskEntriesURL(base string, userID, taskID int64) string {
	return fmt.Sprintf("%s/users/%d/tasks/%d/time_entries", base, userID, taskID)
}

func entriesURL(base string, userID int64) string {
	return fmt.Sprintf("%s/users/%d/time_entries", base, userID)
}

func entryURL(base string, userID, entryID int64) string {
	return fmt.Sprintf("%s/users/%d/time_entries/%d", base, userID, entryID)
}
