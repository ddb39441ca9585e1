// Package tasks implements the task list and its on-disk snapshot.
//
// # Model
//
// A Task has a numeric ID, a free-text description, a completion flag and
// the date it was added. Tasks start incomplete and can only move to
// complete; there is no edit or delete.
//
// IDs are assigned as len(tasks)+1 at creation time. Because nothing is ever
// removed this yields unique IDs, unless the snapshot is edited by hand.
//
// # Snapshot
//
// The whole collection is written on every mutation, never appended. Writes
// go to a sibling temp file which is then renamed over the snapshot, so a
// reader sees either the old or the new content.
//
// The default format is JSON (tasks.json):
//
//	[
//	  {
//	    "id": 1,
//	    "description": "Buy milk",
//	    "complete": false,
//	    "date_added": "January 05, 2024"
//	  }
//	]
//
// YAML (.yaml, .yml) and TOML (.toml) snapshots carry the same fields.
//
// # Usage
//
//	store, err := tasks.Open("tasks.json")
//	if errors.Is(err, tasks.ErrCorruptData) {
//		// refuse to start
//	}
//
//	task, err := store.AddTask("Buy milk")
//	incomplete, complete := store.ListTasks()
//	task, err = store.CompleteTask(task.ID)
package tasks
