package commands

import (
	"context"
	"fmt"
	"strconv"

	"geotask/internal/service"
)

// parseTaskNum parses the 1-based task number argument used by done, undone
// and rm.
func parseTaskNum(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("task number required")
	}
	num, err := strconv.Atoi(args[0])
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task number: %s", args[0])
	}
	return num, nil
}

// findTaskByNumber resolves a 1-based list position to a task by fetching
// the current list. Positions follow server order, matching list output.
func findTaskByNumber(ctx context.Context, svc service.Service, num int) (service.Task, error) {
	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return service.Task{}, err
	}
	if num > len(tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}
