// Package respond renders query results as Russian text blocks.
//
// Each domain groups its records by a fixed key: employees by
// department, events and activities by date, tasks by status. Output is
// deterministic; groups sort by key and records sort by name within a
// group.
package respond
