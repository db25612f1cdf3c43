package service

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// today returns the current local date as YYYY-MM-DD.
func today() string {
	return time.Now().Format(dateLayout)
}

// nullableID maps a zero reference to NULL so clients can clear optional associations.
func nullableID(id *uint) interface{} {
	if id == nil || *id == 0 {
		return nil
	}
	return *id
}

func optionalID(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	value := *id
	return &value
}

func setTrimmed(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = strings.TrimSpace(*value)
	}
}

func changedColumns(updates map[string]interface{}) []string {
	columns := make([]string, 0, len(updates))
	for column := range updates {
		columns = append(columns, column)
	}
	return columns
}
