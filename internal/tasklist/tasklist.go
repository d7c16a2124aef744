// Package tasklist holds the ordered task collection and the pure
// transition function that every user action flows through.
package tasklist

// Task is one todo item.
type Task struct {
	ID    int
	Title string
	Done  bool
}

// List is an ordered collection of tasks. Insertion order is preserved by
// every operation; delete removes one element and leaves the rest in place.
// The zero value is an empty, usable list.
type List struct {
	Tasks []Task

	// nextID is the id the next Add will assign. Ids are never recycled
	// within a list's lifetime, so deleting the newest task does not hand
	// its id to the next one.
	nextID int
}

// ActionKind tags an Action.
type ActionKind int

const (
	ActionAdd ActionKind = iota
	ActionToggle
	ActionDelete
	ActionUpdate
)

// Action is a request to transition the list. Kind selects the operation;
// ID targets toggle/delete/update, Title carries text for add/update.
type Action struct {
	Kind  ActionKind
	ID    int
	Title string
}

// Apply returns the list produced by applying a to l. The input is never
// mutated; callers replace their list with the return value wholesale.
//
// Toggle, delete, and update of an id not present in the list return the
// input unchanged, as does an unrecognized action kind. Add always appends;
// rejecting empty titles is the caller's job.
func Apply(l List, a Action) List {
	switch a.Kind {
	case ActionAdd:
		id := l.freshID()
		out := l
		out.Tasks = make([]Task, 0, len(l.Tasks)+1)
		out.Tasks = append(out.Tasks, l.Tasks...)
		out.Tasks = append(out.Tasks, Task{ID: id, Title: a.Title})
		out.nextID = id + 1
		return out
	case ActionToggle:
		i := indexOf(l.Tasks, a.ID)
		if i < 0 {
			return l
		}
		out := l
		out.Tasks = cloneTasks(l.Tasks)
		out.Tasks[i].Done = !out.Tasks[i].Done
		return out
	case ActionDelete:
		i := indexOf(l.Tasks, a.ID)
		if i < 0 {
			return l
		}
		out := l
		out.Tasks = make([]Task, 0, len(l.Tasks)-1)
		out.Tasks = append(out.Tasks, l.Tasks[:i]...)
		out.Tasks = append(out.Tasks, l.Tasks[i+1:]...)
		return out
	case ActionUpdate:
		i := indexOf(l.Tasks, a.ID)
		if i < 0 {
			return l
		}
		out := l
		out.Tasks = cloneTasks(l.Tasks)
		out.Tasks[i].Title = a.Title
		return out
	default:
		return l
	}
}

// freshID returns an id no live task holds. The counter normally decides,
// but a list built from a literal starts with a zero counter, so existing
// ids are taken as a floor. Ids start at 1; 0 never names a task.
func (l List) freshID() int {
	id := l.nextID
	if id < 1 {
		id = 1
	}
	for _, t := range l.Tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// Find returns the task with the given id.
func (l List) Find(id int) (Task, bool) {
	if i := indexOf(l.Tasks, id); i >= 0 {
		return l.Tasks[i], true
	}
	return Task{}, false
}

// Len returns the number of tasks.
func (l List) Len() int {
	return len(l.Tasks)
}

// Counts summarizes the list for display.
type Counts struct {
	Total  int
	Active int
	Done   int
}

// Counts returns the total, active, and done tallies.
func (l List) Counts() Counts {
	c := Counts{Total: len(l.Tasks)}
	for _, t := range l.Tasks {
		if t.Done {
			c.Done++
		}
	}
	c.Active = c.Total - c.Done
	return c
}

// Seed returns the list the app starts with. Built through Apply so the
// seeded ids come from the same counter as later adds.
func Seed() List {
	var l List
	for _, title := range []string{
		"Check the mail",
		"Water the plants",
		"Read for 30 minutes",
	} {
		l = Apply(l, Action{Kind: ActionAdd, Title: title})
	}
	return l
}

func indexOf(tasks []Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
