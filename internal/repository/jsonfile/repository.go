// Package jsonfile implements the task store on top of a JSON array file.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codeforgood-org/todo/internal/errors"
	"github.com/codeforgood-org/todo/internal/logging"
)

// Repository defines the interface for task storage operations
type Repository interface {
	// Create operations
	CreateTask(task *Task) error

	// Read operations
	GetTask(id int64) (*Task, error)
	ListTasks() ([]*Task, error)

	// Delete operations
	DeleteTask(id int64) (*Task, error)
	DeleteTaskAt(position int) (*Task, error)
	DeleteAllTasks() (int, error)

	// Utility
	Path() string
	Close() error
}

// FileRepository implements the Repository interface over a single JSON file.
// Reads and writes are whole-file: load the array, mutate in memory, write
// it back. No locking; single-process use only.
type FileRepository struct {
	path  string
	warnf func(format string, args ...interface{})
}

// New creates a new JSON file repository for the given path. The file does
// not need to exist yet.
func New(path string) (*FileRepository, error) {
	if path == "" {
		return nil, errors.NewInvalidInputError("path", path, "tasks file path cannot be empty")
	}
	return &FileRepository{
		path: path,
		warnf: func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format, args...)
		},
	}, nil
}

// Path returns the tasks file path
func (r *FileRepository) Path() string {
	return r.path
}

// Close is a no-op; the repository holds no open handles between operations
func (r *FileRepository) Close() error {
	return nil
}

// readAll loads every task from the file. A missing file yields an empty
// list. A file that is not valid JSON, or does not match the task file
// schema, yields an empty list with a warning: corruption is recovered by
// starting fresh, never by crashing.
func (r *FileRepository) readAll() ([]*Task, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Task{}, nil
		}
		if os.IsPermission(err) {
			return nil, errors.NewPermissionError("read", r.path)
		}
		return nil, errors.NewStorageError("read task file", err).WithContext("path", r.path)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Debugf("jsonfile: %v\n", errors.NewCorruptionError(r.path, err))
		r.warnf("Error: %s is corrupted. Starting fresh.\n", r.path)
		return []*Task{}, nil
	}

	if err := validateDocument(doc); err != nil {
		logging.Debugf("jsonfile: %v\n", errors.NewCorruptionError(r.path, err))
		r.warnf("Warning: %s format is invalid. Starting fresh.\n", r.path)
		return []*Task{}, nil
	}

	var tasks []*Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		// Schema passed but decoding did not; treat like corruption.
		logging.Debugf("jsonfile: %v\n", errors.NewCorruptionError(r.path, err))
		r.warnf("Warning: %s format is invalid. Starting fresh.\n", r.path)
		return []*Task{}, nil
	}
	if tasks == nil {
		tasks = []*Task{}
	}
	return tasks, nil
}

// writeAll serializes the full task list and replaces the file. The data is
// written to a temp file in the same directory and renamed into place, so a
// failed write cannot leave a half-written tasks file behind.
func (r *FileRepository) writeAll(tasks []*Task) error {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return errors.NewStorageError("encode task file", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		if os.IsPermission(err) {
			return errors.NewPermissionError("create", dir)
		}
		return errors.NewStorageError("create task directory", err).WithContext("path", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		if os.IsPermission(err) {
			return errors.NewPermissionError("write", dir)
		}
		return errors.NewStorageError("create temp file", err).WithContext("path", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewStorageError("write task file", err).WithContext("path", r.path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewStorageError("close task file", err).WithContext("path", r.path)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.NewStorageError("set task file permissions", err).WithContext("path", r.path)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		if os.IsPermission(err) {
			return errors.NewPermissionError("write", r.path)
		}
		return errors.NewStorageError("replace task file", err).WithContext("path", r.path)
	}

	logging.Debugf("jsonfile: wrote %d task(s) to %s\n", len(tasks), r.path)
	return nil
}

// nextID returns the next unused task ID: one past the highest existing ID,
// so IDs stay unique and monotonic even after removals.
func nextID(tasks []*Task) int64 {
	var max int64
	for _, task := range tasks {
		if task.ID > max {
			max = task.ID
		}
	}
	return max + 1
}

// CreateTask assigns the next unused ID, appends the task, and persists
func (r *FileRepository) CreateTask(task *Task) error {
	tasks, err := r.readAll()
	if err != nil {
		return err
	}

	task.ID = nextID(tasks)
	tasks = append(tasks, task)

	return r.writeAll(tasks)
}

// GetTask retrieves a task by ID
func (r *FileRepository) GetTask(id int64) (*Task, error) {
	tasks, err := r.readAll()
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
}

// ListTasks retrieves all tasks in insertion order
func (r *FileRepository) ListTasks() ([]*Task, error) {
	return r.readAll()
}

// DeleteTask removes the task with the given ID and persists
func (r *FileRepository) DeleteTask(id int64) (*Task, error) {
	tasks, err := r.readAll()
	if err != nil {
		return nil, err
	}

	for i, task := range tasks {
		if task.ID == id {
			removed := task
			tasks = append(tasks[:i], tasks[i+1:]...)
			if err := r.writeAll(tasks); err != nil {
				return nil, err
			}
			return removed, nil
		}
	}

	return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
}

// DeleteTaskAt removes the task at the given 1-based position and persists.
// An out-of-range position leaves the file untouched.
func (r *FileRepository) DeleteTaskAt(position int) (*Task, error) {
	tasks, err := r.readAll()
	if err != nil {
		return nil, err
	}

	if position < 1 || position > len(tasks) {
		return nil, errors.NewNotFoundError("task number", fmt.Sprintf("%d", position)).
			WithContext("count", len(tasks))
	}

	removed := tasks[position-1]
	tasks = append(tasks[:position-1], tasks[position:]...)
	if err := r.writeAll(tasks); err != nil {
		return nil, err
	}
	return removed, nil
}

// DeleteAllTasks truncates the list to empty and persists, returning the
// number of tasks removed
func (r *FileRepository) DeleteAllTasks() (int, error) {
	tasks, err := r.readAll()
	if err != nil {
		return 0, err
	}

	count := len(tasks)
	if err := r.writeAll([]*Task{}); err != nil {
		return 0, err
	}
	return count, nil
}
