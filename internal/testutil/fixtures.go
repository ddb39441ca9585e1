package testutil

// SnapshotJSON is a snapshot with one incomplete and one complete task,
// in the layout of the original tasks.json.
const SnapshotJSON = `[
  {
    "id": 1,
    "description": "Buy milk",
    "complete": false,
    "date_added": "January 05, 2024"
  },
  {
    "id": 2,
    "description": "Write report",
    "complete": true,
    "date_added": "January 06, 2024"
  }
]
`

// SnapshotYAML holds the same tasks as SnapshotJSON.
const SnapshotYAML = `- id: 1
  description: Buy milk
  complete: false
  date_added: January 05, 2024
- id: 2
  description: Write report
  complete: true
  date_added: January 06, 2024
`

// SnapshotTOML holds the same tasks as SnapshotJSON.
const SnapshotTOML = `[[tasks]]
  id = 1
  description = "Buy milk"
  complete = false
  date_added = "January 05, 2024"

[[tasks]]
  id = 2
  description = "Write report"
  complete = true
  date_added = "January 06, 2024"
`

// CorruptSnapshot is a truncated JSON snapshot.
const CorruptSnapshot = `[
  {
    "id": 1,
    "description": "Buy milk",
`
