package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/Popolzen/wishlists/internal/blob"
	"github.com/Popolzen/wishlists/internal/handler"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/Popolzen/wishlists/internal/repository/memory"
	"github.com/gin-gonic/gin"
)

func newExampleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return handler.NewRouter(handler.Deps{
		Repo:  repository.NewFacade(memory.New()),
		Blobs: blob.NewMemoryStore(),
	}, "/api")
}

func send(router *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Пример создания пользователя и вишлиста
func ExampleNewRouter() {
	router := newExampleRouter()

	w := send(router, http.MethodPost, "/api/users", `{"nick_name":"ann"}`)
	fmt.Println("Создание пользователя:", w.Code)

	var user struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &user)

	w = send(router, http.MethodPost, "/api/wishlists", `{"name":"день рождения","user_id":"`+user.ID+`"}`)
	fmt.Println("Создание вишлиста:", w.Code)

	w = send(router, http.MethodGet, "/api/users/"+user.ID+"/wishlists", "")
	var lists []struct {
		Name string `json:"name"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &lists)
	fmt.Println("Вишлистов:", len(lists), lists[0].Name)

	// Output:
	// Создание пользователя: 201
	// Создание вишлиста: 201
	// Вишлистов: 1 день рождения
}

// Пример: ссылка на несуществующего владельца - конфликт
func ExampleNewRouter_conflict() {
	router := newExampleRouter()

	w := send(router, http.MethodPost, "/api/wishlists", `{"name":"x","user_id":"9b2f6a1e-4c3d-4e5f-8a7b-6c5d4e3f2a1b"}`)
	fmt.Println(w.Code)

	// Output:
	// 409
}

// Пример проверки состояния сервиса
func ExampleHealthHandler() {
	router := newExampleRouter()

	w := send(router, http.MethodGet, "/api/health", "")
	fmt.Println(w.Code, w.Body.String())

	// Output:
	// 200 {"status":"ok"}
}
