package badger

import (
	"fmt"

	"github.com/poiesic/collegium/core"
)

// Key prefixes for different record types
const (
	employeeRecordPrefix = "emprec"
	employeeIDSeq        = "emprecseq"
	eventRecordPrefix    = "evtrec"
	eventIDSeq           = "evtrecseq"
	taskRecordPrefix     = "tskrec"
	taskIDSeq            = "tskrecseq"
	activityRecordPrefix = "actrec"
	activityIDSeq        = "actrecseq"
)

// makeEmployeeKey generates a key for an employee record by ID.
func makeEmployeeKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", employeeRecordPrefix, id))
}

// makeEventKey generates a key for an event record by ID.
func makeEventKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", eventRecordPrefix, id))
}

// makeTaskKey generates a key for a task record by ID.
func makeTaskKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", taskRecordPrefix, id))
}

// makeActivityKey generates a key for an activity record by ID.
func makeActivityKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", activityRecordPrefix, id))
}
