// Package task models editor task definitions and the name-keyed table
// built from a tasks.json file.
//
// # Definitions
//
// A Definition is one entry of the "tasks" array. Only "command" and
// "type" are required; everything else mirrors the editor schema:
//
//	{
//	    "label": "build",
//	    "type": "shell",
//	    "command": "go build ./...",
//	    "args": ["-v"],
//	    "group": {"kind": "build", "isDefault": true},
//	    "options": {"cwd": "cmd", "env": {"CGO_ENABLED": "0"}},
//	    "presentation": {"reveal": "silent", "panel": "dedicated"}
//	}
//
// Enumerated fields (type, group kind, reveal, panel, severity) decode into
// closed types. Unknown values are rejected when the file is loaded.
//
// # Naming
//
// Table keys are derived per entry: the label if present, else the group
// when it is a plain string, else "task<index>" using the zero-based
// position in the array. A later entry with the same key replaces the
// earlier definition but keeps the earlier position in iteration order.
package task
