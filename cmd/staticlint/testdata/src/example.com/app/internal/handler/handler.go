package handler

import (
	"database/sql" // want `импорт database/sql в HTTP слое запрещён`
	"net/http"
)

func Ping(db *sql.DB) int {
	if db.Ping() != nil {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}
