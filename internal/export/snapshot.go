package export

import (
	"encoding/json"

	"github.com/alexanderramin/eduplan/internal/domain"
)

// Snapshot renders the course list as pretty-printed JSON, suitable for
// re-import. An empty list renders as "[]".
func Snapshot(courses []domain.Course) ([]byte, error) {
	if courses == nil {
		courses = []domain.Course{}
	}
	return json.MarshalIndent(courses, "", "  ")
}
