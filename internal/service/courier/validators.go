package courier

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidUsername(username string) bool {
	username = strings.TrimSpace(username)
	if username == "" {
		return false
	}

	for _, char := range username {
		switch {
		case char >= 'a' && char <= 'z',
			char >= 'A' && char <= 'Z',
			char >= '0' && char <= '9',
			char == '_' || char == '-' || char == '.':
		default:
			return false
		}
	}
	return true
}

func isValidCourierID(id int64) bool {
	return id > 0
}

func isValidLocation(point entities.GeoPoint) bool {
	return point.Valid()
}
