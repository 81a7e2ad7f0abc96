package project

// DeriveStatus recomputes a project's status from its checklist, applied
// whenever a task-editing operation finishes.
//
// All tasks done moves the project to completed; a partial checklist moves it
// to active. Unchecking every task only demotes a completed project back to
// active, while a fresh project with nothing checked stays in planning.
// Nothing ever transitions back into planning.
func DeriveStatus(current Status, tasks []ChecklistTask) Status {
	if len(tasks) == 0 {
		return current
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	switch {
	case completed == len(tasks):
		return StatusCompleted
	case completed > 0:
		return StatusActive
	case current == StatusCompleted:
		return StatusActive
	default:
		return current
	}
}
