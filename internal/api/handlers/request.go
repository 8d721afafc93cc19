package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// ErrInvalidPathParam возвращается, когда path-параметр не является числом
var ErrInvalidPathParam = errors.New("handlers: invalid path parameter")

// DecodeJSON декодирует тело запроса в модель, отклоняя неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// PathInt64 извлекает числовой path-параметр из запроса
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, ErrInvalidPathParam
	}

	return value, nil
}
